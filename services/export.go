package services

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"guaranihost/models"
	"guaranihost/utils"
)

var csvHeader = []string{"ID", "Título", "Ciudad", "Dirección", "Precio por noche", "Huéspedes", "Estado", "Calificación"}

// WritePropertiesCSV escribe una fila por propiedad. Los textos van
// siempre entre comillas dobles y los números sin comillas.
func WritePropertiesCSV(w io.Writer, props []models.Property) error {
	var b strings.Builder
	for i, h := range csvHeader {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteCSV(h))
	}
	b.WriteString("\r\n")

	for _, p := range props {
		b.WriteString(quoteCSV(p.ID))
		b.WriteByte(',')
		b.WriteString(quoteCSV(p.Title))
		b.WriteByte(',')
		b.WriteString(quoteCSV(p.City))
		b.WriteByte(',')
		b.WriteString(quoteCSV(p.Address))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.PricePerNight, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Guests))
		b.WriteByte(',')
		b.WriteString(quoteCSV(p.Status.Label()))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Rating(), 'f', 1, 64))
		b.WriteString("\r\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:sans-serif;margin:24px}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #ccc;padding:6px;text-align:left}
th{background:#f3f3f3}
</style>
</head>
<body onload="window.print()">
<h1>{{.Title}}</h1>
<p>Generado el {{.Generated}} · {{len .Rows}} propiedades</p>
<table>
<thead><tr><th>Título</th><th>Ciudad</th><th>Dirección</th><th>Precio por noche</th><th>Huéspedes</th><th>Estado</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Title}}</td><td>{{.City}}</td><td>{{.Address}}</td><td>{{.Price}}</td><td>{{.Guests}}</td><td>{{.Status}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

type printRow struct {
	Title, City, Address, Price, Status string
	Guests                              int
}

// RenderPropertiesHTML arma el documento para imprimir o guardar como PDF
func RenderPropertiesHTML(props []models.Property, now time.Time) ([]byte, error) {
	rows := make([]printRow, len(props))
	for i, p := range props {
		rows[i] = printRow{
			Title:   p.Title,
			City:    p.City,
			Address: p.Address,
			Price:   utils.FormatPrice(p.PricePerNight),
			Status:  p.Status.Label(),
			Guests:  p.Guests,
		}
	}
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Title     string
		Generated string
		Rows      []printRow
	}{
		Title:     "Mis propiedades",
		Generated: now.Format("02/01/2006 15:04"),
		Rows:      rows,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
