package crawl

// DefaultBaseURL is the site DefaultPages belong to.
const DefaultBaseURL = "https://revealjs.com"

// DefaultPages lists the reveal.js documentation pages in navigation order.
var DefaultPages = []string{
	"/",
	"/installation/",
	"/markup/",
	"/markdown/",
	"/backgrounds/",
	"/media/",
	"/lightbox/",
	"/code/",
	"/math/",
	"/fragments/",
	"/links/",
	"/layout/",
	"/slide-visibility/",
	"/themes/",
	"/transitions/",
	"/config/",
	"/presentation-size/",
	"/vertical-slides/",
	"/auto-animate/",
	"/auto-slide/",
	"/speaker-view/",
	"/scroll-view/",
	"/slide-numbers/",
	"/jump-to-slide/",
	"/touch-navigation/",
	"/pdf-export/",
	"/overview/",
	"/fullscreen/",
	"/initialization/",
	"/api/",
	"/events/",
	"/keyboard/",
	"/presentation-state/",
	"/postmessage/",
	"/plugins/",
	"/creating-plugins/",
	"/multiplex/",
	"/react/",
	"/upgrading/",
}
