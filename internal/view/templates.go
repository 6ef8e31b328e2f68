package view

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/AlexLPinheiro/SistemaLoja/internal/money"
	"github.com/AlexLPinheiro/SistemaLoja/internal/search"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	Data        any
}

// Labels for the backend's status and payment enumerations.
var statusLabels = map[string]string{
	"pago":         "Pago",
	"nao_pago":     "Não pago",
	"em_atraso":    "Em atraso",
	"em_dia":       "Em dia",
	"entregue":     "Entregue",
	"nao_entregue": "Não entregue",
	"a_vista":      "À vista",
	"parcelado":    "Parcelado",
	"em_aberto":    "Em aberto",
	"fechado":      "Fechado",
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"brl": money.FormatBRL,
		"usd": money.FormatUSD,
		// dataBR formats the backend's date strings for display.
		"dataBR": func(s string) string {
			for _, layout := range []string{"2006-01-02", time.RFC3339} {
				if t, err := time.Parse(layout, s); err == nil {
					return t.Format("02/01/2006")
				}
			}
			return s
		},
		// buscaDelayMS is read by the search box script as its quiet
		// period, keeping page and server on the same constant.
		"buscaDelayMS": func() int64 {
			return search.DefaultDelay.Milliseconds()
		},
		"statusLabel": func(s string) string {
			if label, ok := statusLabels[s]; ok {
				return label
			}
			return s
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}
