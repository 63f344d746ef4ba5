package email

import "html/template"

var (
	welcomeTmpl = template.Must(template.New("welcome").Parse(`
<html><body style="font-family:sans-serif">
<h2>Welcome, {{.Name}}!</h2>
<p>Your Kabataan Records account has been created. An administrator will
review and activate it shortly. Once activated you can sign in here:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
</body></html>`))

	resetTmpl = template.Must(template.New("reset").Parse(`
<html><body style="font-family:sans-serif">
<h2>Hello, {{.Name}}</h2>
<p>We received a request to reset your password. The link below is valid
for one hour:</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>
</body></html>`))

	activatedTmpl = template.Must(template.New("activated").Parse(`
<html><body style="font-family:sans-serif">
<h2>Hello, {{.Name}}</h2>
<p>Your account has been activated. You can now sign in:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
</body></html>`))

	reviewTmpl = template.Must(template.New("review").Parse(`
<html><body style="font-family:sans-serif">
<h2>Hello, {{.Name}}</h2>
<p>Your {{.EntityLabel}} has been
<strong style="color:{{.Color}}">{{.Outcome}}</strong>.</p>
{{if .Note}}<p>Reviewer note: {{.Note}}</p>{{end}}
</body></html>`))

	importTmpl = template.Must(template.New("import").Parse(`
<html><body style="font-family:sans-serif">
<h2>Hello, {{.Name}}</h2>
<p>Your youth profile import has finished.</p>
<ul>
<li>Total records: {{.Total}}</li>
<li>Created: {{.Created}}</li>
<li>Duplicates skipped: {{.Duplicates}}</li>
<li>Errors: {{.Errors}}</li>
</ul>
</body></html>`))
)
