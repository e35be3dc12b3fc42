package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/restkit/internal/reqmodel"
)

var (
	methodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	refStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func renderRequest(w io.Writer, req *reqmodel.Request) {
	fmt.Fprintln(w, methodStyle.Render(string(req.Method))+" "+req.URL)

	if len(req.Params) > 0 {
		fmt.Fprintln(w, labelStyle.Render("params"))
		for _, p := range req.Params {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(p.Key+" ="), p.Value)
		}
	}

	if len(req.Headers) > 0 {
		fmt.Fprintln(w, labelStyle.Render("headers"))
		for _, h := range req.Headers {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(h.Name+":"), h.Value)
		}
	}

	switch req.Auth.Kind {
	case reqmodel.AuthBearer:
		fmt.Fprintf(w, "%s bearer %s\n", labelStyle.Render("auth"), req.Auth.Token)
	case reqmodel.AuthBasic:
		fmt.Fprintf(w, "%s basic %s\n", labelStyle.Render("auth"), req.Auth.Username)
	}

	renderBody(w, req.Body)

	for _, warning := range req.Warnings {
		fmt.Fprintln(w, warnStyle.Render("! "+warning))
	}
}

func renderBody(w io.Writer, body reqmodel.Body) {
	if body.Kind == reqmodel.BodyNone {
		return
	}
	fmt.Fprintln(w, labelStyle.Render("body")+dimStyle.Render(" ("+body.Kind.String()+")"))
	switch body.Kind {
	case reqmodel.BodyJSON:
		fmt.Fprintf(w, "  %v\n", body.JSON)
	case reqmodel.BodyFormData, reqmodel.BodyURLEncoded:
		for _, f := range body.Form {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(f.Name+" ="), f.Value)
		}
	case reqmodel.BodyRaw:
		for _, line := range strings.Split(body.Raw, "\n") {
			fmt.Fprintln(w, "  "+line)
		}
	}
}
