package web

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Schedule Monitoring Calculator</title>
<style>
body{font-family:system-ui,sans-serif;max-width:46rem;margin:2rem auto;padding:0 1rem;color:#222}
label{display:block;margin:.6rem 0 .2rem;font-weight:600}
input,textarea{width:100%;box-sizing:border-box;padding:.4rem;font:inherit}
.row{display:flex;gap:1rem}.row>div{flex:1}
button{margin-top:1rem;padding:.5rem 1.2rem;font:inherit}
.error{background:#fde8e8;border:1px solid #e0a0a0;padding:.6rem;margin:1rem 0;white-space:pre-line}
.metrics{display:flex;gap:1rem;margin:1rem 0}.metrics div{flex:1;border:1px solid #ddd;padding:.6rem}
.metrics b{display:block;font-size:1.5rem}
details{margin:.6rem 0}
</style>
</head>
<body>
<h1>Schedule Monitoring Calculator</h1>
<p>First day = {{.EdgeHours}}h, last day = {{.EdgeHours}}h, middle days = {{.MiddleHours}}h.
After-hours are weekends or weekdays before {{.WindowStart}} or at/after {{.WindowEnd}}.</p>

<form method="post" action="/calc" enctype="multipart/form-data">
  <div class="row">
    <div><label for="start">Start date</label><input id="start" name="start" type="date" value="{{.Start}}"></div>
    <div><label for="end">End date</label><input id="end" name="end" type="date" value="{{.End}}"></div>
  </div>
  <label for="entries">Monitored dates (comma-separated)</label>
  <textarea id="entries" name="entries" rows="5" placeholder="MM/DD/YYYY [HHMM], e.g.&#10;09/18/2025 0700, 09/19/2025 1800, 09/20/2025">{{.Entries}}</textarea>
  <label for="file">Or upload a CSV/TXT with one entry per line (MM/DD/YYYY [HHMM])</label>
  <input id="file" name="file" type="file" accept=".csv,.txt">
  <button type="submit">Calculate</button>
</form>

{{if .Error}}<div class="error">{{.Error}}{{range .Invalid}}
{{.}}{{end}}</div>{{end}}

{{with .Summary}}
{{if .Ignored}}<details><summary>Ignored (out of range)</summary><ul>
{{range .Ignored}}<li>{{.}}</li>{{end}}
</ul></details>{{end}}
{{end}}

{{if .HasResult}}{{with .Summary}}
<h2>Results</h2>
<div class="metrics">
  <div>Dry Time (days)<b>{{.DryTime}}</b></div>
  <div>Normal (hr)<b>{{hours .MonitoringHours}}</b></div>
  <div>After-Hours (hr)<b>{{hours .AfterHours}}</b></div>
  <div>Total (hr)<b>{{hours .TotalMonitoringHours}}</b></div>
</div>
<details open><summary>Counted entries</summary><ul>
{{range .Entries}}<li>{{date .Date}} {{clock .Time}} - {{.Tag}}</li>{{end}}
</ul></details>
{{end}}{{end}}
</body>
</html>
`
