package router

import (
	"fmt"
	"strings"
)

// PresentationKind identifies which variant a Presentation holds.
type PresentationKind uint8

const (
	KindLink PresentationKind = iota
	KindSheet
	KindReplace
	KindRoot
)

func (k PresentationKind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindSheet:
		return "sheet"
	case KindReplace:
		return "replace"
	case KindRoot:
		return "root"
	default:
		return fmt.Sprintf("PresentationKind(%d)", uint8(k))
	}
}

// LinkOptions tunes link presentations.
type LinkOptions struct {
	// AutoPopToPreviousState makes a link that would move to the parent's
	// base state pop the current state instead of pushing a new one.
	AutoPopToPreviousState bool
}

// SheetOptions tunes sheet presentations.
type SheetOptions struct {
	// MakeContentNavigable asks the rendering layer to wrap the presented
	// content in its own navigation container.
	MakeContentNavigable bool
}

// Presentation describes how a state transition is applied to a router.
//
// It is a closed set of variants: link and sheet push onto the router's own
// route and carry options, replace swaps the router's route, and root swaps the
// root router's route. The zero value is a plain link.
//
// Presentation values are comparable with ==.
type Presentation struct {
	kind  PresentationKind
	link  LinkOptions
	sheet SheetOptions
}

// DefaultPresentation is used when neither the state nor the router config
// selects a presentation.
var DefaultPresentation = Link()

// Link presents the state as a navigation link with default options.
func Link() Presentation {
	return Presentation{kind: KindLink}
}

// LinkWith presents the state as a navigation link with options.
func LinkWith(options LinkOptions) Presentation {
	return Presentation{kind: KindLink, link: options}
}

// AutoPopLink is a link with AutoPopToPreviousState enabled.
func AutoPopLink() Presentation {
	return LinkWith(LinkOptions{AutoPopToPreviousState: true})
}

// Sheet presents the state as a sheet with default options.
func Sheet() Presentation {
	return Presentation{kind: KindSheet}
}

// SheetWith presents the state as a sheet with options.
func SheetWith(options SheetOptions) Presentation {
	return Presentation{kind: KindSheet, sheet: options}
}

// NavigableSheet is a sheet whose content gets its own navigation container.
func NavigableSheet() Presentation {
	return SheetWith(SheetOptions{MakeContentNavigable: true})
}

// Replace replaces the router's base state, dropping any pushed state.
func Replace() Presentation {
	return Presentation{kind: KindReplace}
}

// Root replaces the root router's base state, dropping its pushed state.
func Root() Presentation {
	return Presentation{kind: KindRoot}
}

func (p Presentation) Kind() PresentationKind {
	return p.kind
}

// LinkOptions returns the link options; zero unless Kind is KindLink.
func (p Presentation) LinkOptions() LinkOptions {
	return p.link
}

// SheetOptions returns the sheet options; zero unless Kind is KindSheet.
func (p Presentation) SheetOptions() SheetOptions {
	return p.sheet
}

func (p Presentation) IsLink() bool {
	return p.kind == KindLink
}

func (p Presentation) IsSheet() bool {
	return p.kind == KindSheet
}

func (p Presentation) String() string {
	switch {
	case p.kind == KindLink && p.link.AutoPopToPreviousState:
		return "link(autoPop)"
	case p.kind == KindSheet && p.sheet.MakeContentNavigable:
		return "sheet(navigable)"
	default:
		return p.kind.String()
	}
}

func (p Presentation) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Presentation) UnmarshalText(text []byte) error {
	parsed, err := ParsePresentation(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePresentation parses the text form produced by Presentation.String.
// Matching ignores case and surrounding space. "navigationSheet" is accepted
// as another name for "sheet(navigable)".
func ParsePresentation(text string) (Presentation, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "link":
		return Link(), nil
	case "link(autopop)":
		return AutoPopLink(), nil
	case "sheet":
		return Sheet(), nil
	case "sheet(navigable)", "navigationsheet":
		return NavigableSheet(), nil
	case "replace":
		return Replace(), nil
	case "root":
		return Root(), nil
	default:
		return Presentation{}, fmt.Errorf("%w: %q", ErrUnknownPresentation, text)
	}
}
