package domain

import "fmt"

// Platform identifies a connected marketplace.
type Platform string

const (
	PlatformEtsy   Platform = "etsy"
	PlatformEbay   Platform = "ebay"
	PlatformAmazon Platform = "amazon"
	PlatformSwell  Platform = "swell"
)

// AllPlatforms lists every marketplace the aggregator knows how to talk to.
var AllPlatforms = []Platform{
	PlatformEtsy,
	PlatformEbay,
	PlatformAmazon,
	PlatformSwell,
}

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform validates a platform identifier coming from a route
// parameter or a query string.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(raw)
	for _, known := range AllPlatforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", raw)
}
