package domain

// FileRef describes an attached payment screenshot before upload.
type FileRef struct {
	Name        string
	Size        int64
	ContentType string
}

// Draft is an in-progress, unpersisted registration form as submitted by
// the user. Field values arrive as raw strings; validation decides which
// are required for the selected tier.
type Draft struct {
	FullName          string
	MobileNumber      string
	EmailAddress      string
	FullAddress       string
	Gender            string
	StravaProfileLink string
	TshirtSize        string
	DeliveryAddress   string
	WhereHeard        string
	Tier              TierID
	File              *FileRef
}
