package output

import (
	"html/template"
	"io"

	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/providers"
)

type volumeData struct {
	Meta     providers.Metadata
	Start    int
	End      int
	Chapters []volumeChapter
}

type volumeChapter struct {
	Number int
	Title  string
	Body   template.HTML
}

var volumeTmpl = template.Must(template.New("volume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Meta.Title}} — Chapters {{.Start}}-{{.End}}</title>
<style>
body { font-family: Georgia, serif; max-width: 42em; margin: 0 auto; padding: 1em; line-height: 1.6; }
h1 { text-align: center; }
h2 { page-break-before: always; margin-top: 3em; }
img { max-width: 100%; }
@media print {
  body { max-width: none; }
  a { color: inherit; text-decoration: none; }
}
</style>
</head>
<body>
<h1>{{.Meta.Title}}</h1>
{{if .Meta.Author}}<p class="author">by {{.Meta.Author}}</p>{{end}}
<p class="range">Chapters {{.Start}}-{{.End}}</p>
{{range .Chapters}}
<h2 id="ch-{{.Number}}">{{.Number}}. {{.Title}}</h2>
{{.Body}}
{{end}}
</body>
</html>
`))

func renderHTML(w io.Writer, meta providers.Metadata, g chapters.Group) error {
	data := volumeData{
		Meta:  meta,
		Start: g.Start,
		End:   g.End,
	}

	for i, ch := range g.Chapters {
		data.Chapters = append(data.Chapters, volumeChapter{
			Number: g.Start + i,
			Title:  ch.DisplayTitle(),
			// Content has already been through the sanitizer.
			Body: template.HTML(ch.Content),
		})
	}

	return volumeTmpl.Execute(w, data)
}
