package config

// Static presentation constants. Consumed only by the presentation layer;
// none of the stores read these.
const (
	AppName         = "Consult"
	DefaultLocation = "Berlin, Germany"
	MaxContentWidth = 480
)

// Font stacks used by the presentation layer.
const (
	FontFamilyPrimary  = "Inter, -apple-system, sans-serif"
	FontFamilyHeadings = "Sora, Inter, sans-serif"
)
