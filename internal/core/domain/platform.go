package domain

// Platform names an advertising platform as it appears in ad records and
// rate cards. Names are case-sensitive.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformLinkedIn  Platform = "LinkedIn"
)

// AdType names the format of an ad creative.
type AdType string

const (
	AdTypeImage AdType = "image"
	AdTypeVideo AdType = "video"
	AdTypeText  AdType = "text"
)
