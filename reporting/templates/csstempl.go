package templates

// CSStempl is our css template sheet
var CSStempl = []byte(`p {
  margin-bottom: 1.625em;
  font-family: 'Lucida Sans', Arial, sans-serif;
}

h1 {
  color: #000;
  font-family: 'Lato', sans-serif;
  font-size: 32px;
  font-weight: 300;
  line-height: 58px;
  margin: 0 0 28px;
}

ul {
  list-style-type: none;
  margin: 0;
  padding: 0;
  overflow: hidden;
  background-color: #000;
  font-family: "Arial", Helvetica, sans-serif;
}

li {
  float: left;
  border-right: 1px solid #bbb;
}

li:last-child {
  border-right: none;
}

li a {
  display: block;
  color: white;
  text-align: center;
  padding: 14px 16px;
  text-decoration: none;
}

li a:hover {
  background-color: #c62828;
}

.content {
  margin: 24px;
  font-family: 'Lucida Sans', Arial, sans-serif;
}

table {
  border-collapse: collapse;
  font-size: 14px;
}

th, td {
  border: 1px solid #ccc;
  padding: 6px 12px;
  text-align: left;
}

th {
  background-color: #eee;
}

.bubble {
  max-width: 60%;
  padding: 10px 14px;
  margin: 6px 0;
  border-radius: 14px;
  font-size: 14px;
  clear: both;
}

.bubble .meta {
  font-size: 11px;
  color: #666;
  margin-bottom: 3px;
}

.bubble.left {
  float: left;
  background-color: #e8e8e8;
}

.bubble.right {
  float: right;
  background-color: #ffcdd2;
}

.footer {
  clear: both;
  color: #999;
  font-size: 11px;
  padding: 24px;
}
`)
