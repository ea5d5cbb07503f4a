package domain

// Status is the lifecycle state of a campaign. It is a closed enumeration;
// every value arriving from the outside must pass Valid before use.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Platform is the advertising channel a campaign runs on.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformGoogle    Platform = "google"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformEmail     Platform = "email"
	PlatformOther     Platform = "other"
)

func Platforms() []Platform {
	return []Platform{
		PlatformFacebook, PlatformInstagram, PlatformTwitter,
		PlatformGoogle, PlatformLinkedIn, PlatformEmail, PlatformOther,
	}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter,
		PlatformGoogle, PlatformLinkedIn, PlatformEmail, PlatformOther:
		return true
	}
	return false
}

// Category is the marketing objective of a campaign.
type Category string

const (
	CategoryBrandAwareness Category = "brand_awareness"
	CategoryLeadGeneration Category = "lead_generation"
	CategorySales          Category = "sales"
	CategoryEngagement     Category = "engagement"
	CategoryRetention      Category = "retention"
	CategoryOther          Category = "other"
)

func Categories() []Category {
	return []Category{
		CategoryBrandAwareness, CategoryLeadGeneration, CategorySales,
		CategoryEngagement, CategoryRetention, CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBrandAwareness, CategoryLeadGeneration, CategorySales,
		CategoryEngagement, CategoryRetention, CategoryOther:
		return true
	}
	return false
}
