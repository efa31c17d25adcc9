package config

import "git.home.luguber.info/inful/sitecompose/internal/foundation/normalization"

// LinkPolicy is the builder's reaction to a broken link.
type LinkPolicy string

const (
	LinkPolicyIgnore LinkPolicy = "ignore"
	LinkPolicyWarn   LinkPolicy = "warn"
	LinkPolicyFail   LinkPolicy = "fail"
)

// NavPosition places a navbar item on the left or right side.
type NavPosition string

const (
	NavPositionLeft  NavPosition = "left"
	NavPositionRight NavPosition = "right"
)

// NavItemType distinguishes plain links from doc sidebar entries.
type NavItemType string

const (
	NavItemLink       NavItemType = "link"
	NavItemDocSidebar NavItemType = "doc_sidebar"
)

// ColorModeName is a light or dark scheme.
type ColorModeName string

const (
	ColorModeLight ColorModeName = "light"
	ColorModeDark  ColorModeName = "dark"
)

// FooterStyle is the footer color scheme.
type FooterStyle string

const (
	FooterStyleLight FooterStyle = "light"
	FooterStyleDark  FooterStyle = "dark"
)

var (
	linkPolicyNormalizer = normalization.NewEnumNormalizer("link policy", map[string]LinkPolicy{
		"ignore": LinkPolicyIgnore,
		"warn":   LinkPolicyWarn,
		"fail":   LinkPolicyFail,
		"throw":  LinkPolicyFail, // generator-native spelling
	})
	navPositionNormalizer = normalization.NewEnumNormalizer("nav position", map[string]NavPosition{
		"left":  NavPositionLeft,
		"right": NavPositionRight,
	})
	navItemTypeNormalizer = normalization.NewEnumNormalizer("nav item type", map[string]NavItemType{
		"link":        NavItemLink,
		"doc_sidebar": NavItemDocSidebar,
		"docsidebar":  NavItemDocSidebar,
	})
	colorModeNormalizer = normalization.NewEnumNormalizer("color mode", map[string]ColorModeName{
		"light": ColorModeLight,
		"dark":  ColorModeDark,
	})
	footerStyleNormalizer = normalization.NewEnumNormalizer("footer style", map[string]FooterStyle{
		"light": FooterStyleLight,
		"dark":  FooterStyleDark,
	})
)

// NormalizeLinkPolicy canonicalizes a link policy, returning "" if unknown.
func NormalizeLinkPolicy(raw string) LinkPolicy {
	if v, ok := linkPolicyNormalizer.Normalize(raw); ok {
		return v
	}
	return ""
}

// NormalizeNavPosition canonicalizes a nav position, returning "" if unknown.
func NormalizeNavPosition(raw string) NavPosition {
	if v, ok := navPositionNormalizer.Normalize(raw); ok {
		return v
	}
	return ""
}

// NormalizeNavItemType canonicalizes a nav item type, returning "" if unknown.
func NormalizeNavItemType(raw string) NavItemType {
	if v, ok := navItemTypeNormalizer.Normalize(raw); ok {
		return v
	}
	return ""
}

// NormalizeColorMode canonicalizes a color mode, returning "" if unknown.
func NormalizeColorMode(raw string) ColorModeName {
	if v, ok := colorModeNormalizer.Normalize(raw); ok {
		return v
	}
	return ""
}

// NormalizeFooterStyle canonicalizes a footer style, returning "" if unknown.
func NormalizeFooterStyle(raw string) FooterStyle {
	if v, ok := footerStyleNormalizer.Normalize(raw); ok {
		return v
	}
	return ""
}

// AllLinkPolicies returns the canonical link policy values.
func AllLinkPolicies() []LinkPolicy { return linkPolicyNormalizer.Canonical() }

// AllNavPositions returns the canonical nav positions.
func AllNavPositions() []NavPosition { return navPositionNormalizer.Canonical() }

// AllNavItemTypes returns the canonical nav item types.
func AllNavItemTypes() []NavItemType { return navItemTypeNormalizer.Canonical() }

// AllColorModes returns the canonical color modes.
func AllColorModes() []ColorModeName { return colorModeNormalizer.Canonical() }

// AllFooterStyles returns the canonical footer styles.
func AllFooterStyles() []FooterStyle { return footerStyleNormalizer.Canonical() }
