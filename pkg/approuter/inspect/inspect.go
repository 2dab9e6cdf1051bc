// Package inspect renders router trees as plain text for debugging overlays,
// logs and bug reports. Labels are localized; English is the fallback.
package inspect

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/approuter/pkg/approuter/router"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			panic(fmt.Sprintf("inspect: listing locales: %v", err))
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
				panic(fmt.Sprintf("inspect: loading %s: %v", file, err))
			}
		}
	})
	return bundle
}

// Languages returns the languages reports can be rendered in.
func Languages() []language.Tag {
	return loadBundle().LanguageTags()
}

// Options configures a report.
type Options struct {
	// Language selects the label language. The zero tag means English.
	Language language.Tag
}

type labels struct {
	localizer *i18n.Localizer
}

func newLabels(options Options) labels {
	langs := []string{language.English.String()}
	if options.Language != language.Und {
		langs = append([]string{options.Language.String()}, langs...)
	}
	return labels{localizer: i18n.NewLocalizer(loadBundle(), langs...)}
}

func (l labels) get(id string) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return text
}

func (l labels) routerCount(n int) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "RouterCount",
		PluralCount:  n,
		TemplateData: map[string]int{"Count": n},
	})
	if err != nil {
		return fmt.Sprintf("Routers: %d", n)
	}
	return text
}

// Stack renders r and its ancestors, r first and the root last.
//
//	Routers: 2
//	#5 parent: #4
//	  base: 1 pushed: none
//	#4 parent: none
//	  base: 0 pushed: 1 (link)
func Stack[S comparable, C any](r *router.StackRouter[S, C], options Options) string {
	var b strings.Builder
	writeStack(&b, newLabels(options), r, "")
	return b.String()
}

func writeStack[S comparable, C any](b *strings.Builder, l labels, r *router.StackRouter[S, C], indent string) {
	stack := r.Stack()
	fmt.Fprintf(b, "%s%s\n", indent, l.routerCount(len(stack)))
	for _, node := range stack {
		parent := l.get("NoneLabel")
		if p := node.Parent(); p != nil {
			parent = fmt.Sprintf("#%d", p.ID())
		}
		fmt.Fprintf(b, "%s#%d %s: %s\n", indent, node.ID(), l.get("ParentLabel"), parent)

		route := node.Route()
		pushed := l.get("NoneLabel")
		if p, ok := route.Pushed(); ok {
			pushed = fmt.Sprintf("%v (%s)", p.State, p.Presentation)
		}
		fmt.Fprintf(b, "%s  %s: %v %s: %s\n", indent, l.get("BaseLabel"), route.Base(), l.get("PushedLabel"), pushed)
	}
}

// Tabs renders the selected tab and the stack router of every configured tab.
// Tabs whose stack router was never used are listed without creating one.
func Tabs[T comparable, S comparable, C any](tr *router.TabRouter[T, S, C], options Options) string {
	l := newLabels(options)
	var b strings.Builder

	route := tr.Route()
	fmt.Fprintf(&b, "%s: %v %s: %s\n", l.get("TabLabel"), route.Tab, l.get("BehaviorLabel"), route.Behavior)

	tabs := tr.Tabs()
	if len(tabs) == 0 {
		tabs = []T{route.Tab}
	}
	for _, tab := range tabs {
		marker := " "
		if tab == route.Tab {
			marker = "*"
		}
		r, ok := tr.CreatedStackRouter(tab)
		if !ok {
			fmt.Fprintf(&b, "%s [%v] %s\n", marker, tab, l.get("NotCreatedLabel"))
			continue
		}
		fmt.Fprintf(&b, "%s [%v]\n", marker, tab)
		writeStack(&b, l, r, "    ")
	}
	return b.String()
}
