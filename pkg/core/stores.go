package core

// DBStores in a wrapper for all the datastores.
type DBStores struct {
	InquiryStore      InquiryStore
	BrochureLeadStore BrochureLeadStore
}
