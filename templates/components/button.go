package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonProps configures Button and LinkButton
type ButtonProps struct {
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	Class     string
}

func buttonClass(p ButtonProps) g.Node {
	variant := map[ButtonVariant]string{
		ButtonPrimary:   "bg-primary text-white hover:bg-primary/90",
		ButtonSecondary: "bg-secondary text-white hover:bg-secondary/90",
		ButtonOutline:   "border-2 border-primary text-primary hover:bg-primary/10",
	}[p.Variant]
	if variant == "" {
		variant = "bg-primary text-white hover:bg-primary/90"
	}

	size := map[ButtonSize]string{
		ButtonSmall: "px-3 py-1.5 text-sm",
		ButtonLarge: "px-8 py-4 text-lg",
	}[p.Size]
	if size == "" {
		size = "px-6 py-3 text-base"
	}

	return ClassNames(
		"neumorphic-button inline-flex items-center justify-center gap-2 rounded-full font-bold transition-all duration-300",
		variant,
		size,
		When(p.FullWidth, "w-full"),
		p.Class,
	)
}

// Button renders a <button>; children carry the label plus any attributes
// such as h.Type or hx-* triggers.
func Button(p ButtonProps, children ...g.Node) g.Node {
	return h.Button(buttonClass(p), g.Group(children))
}

// LinkButton renders an anchor styled as a button
func LinkButton(p ButtonProps, href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), buttonClass(p), g.Group(children))
}
