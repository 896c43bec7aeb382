package templates

import "html/template"

//ReportingInfo fills the templates listed in this package
type ReportingInfo struct {
	Title  string
	RunID  string
	Writer template.HTML
}

var pageHeader = `
<head>
<meta content="text/html;charset=utf-8" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<link rel="stylesheet" type="text/css" href="./style.css">
<title>WireTalk - {{.Title}}</title>
</head>

<ul>
  <li><a href="./index.html">WireTalk</a></li>
  <li><a href="./conversations.html">Conversations</a></li>
  <li><a href="./transcript.html">Transcript</a></li>
  <li><a href="./endpoints.html">Endpoints</a></li>
  <li><a href="./diagram.html">Diagram</a></li>
  <li style="float:right">
    <a href="https://github.com/redwire/wiretalk" target="_blank">WireTalk on GitHub</a>
  </li>
</ul>
`

var pageFooter = `
<div class="footer">report run {{.RunID}}</div>
`

// Hometempl is our home template html
var Hometempl = pageHeader + `
<div class="content">
<h1>Parse Summary</h1>
{{.Writer}}
</div>
` + pageFooter

// ConversationsTempl renders the conversation table page
var ConversationsTempl = pageHeader + `
<div class="content">
<h1>Conversations</h1>
<table>
<tr><th>Endpoint A</th><th>Endpoint B</th><th>Messages</th><th>Protocols</th><th>Ports</th><th>Transcript</th></tr>
{{.Writer}}
</table>
</div>
` + pageFooter

// TranscriptTempl renders the busiest conversation as chat bubbles
var TranscriptTempl = pageHeader + `
<div class="content">
<h1>{{.Title}}</h1>
{{.Writer}}
</div>
` + pageFooter

// EndpointsTempl renders the endpoint classification table page
var EndpointsTempl = pageHeader + `
<div class="content">
<h1>Endpoints</h1>
<table>
<tr><th>Identifier</th><th>Scope</th><th>Role</th><th>Hostname</th><th>Organization</th><th>Country</th><th>City</th></tr>
{{.Writer}}
</table>
</div>
` + pageFooter

// DiagramTempl renders the conversation graph as inline svg
var DiagramTempl = pageHeader + `
<div class="content">
<h1>Conversation Diagram</h1>
{{.Writer}}
</div>
` + pageFooter
