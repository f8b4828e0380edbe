package nav

// Fade-in settings for cards entering the viewport.
const (
	RevealThreshold  = 0.1
	RevealRootMargin = "0px 0px -50px 0px"
	RevealSelector   = ".cv-item, .publication-card, .project-card"
	RevealTransition = "opacity 0.6s ease, transform 0.6s ease"
	RevealOffset     = "translateY(30px)"
)
