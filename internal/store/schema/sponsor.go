package schema

// Sponsor represents a record in the sponsors collection: the organization
// behind one or more sponsorships
type Sponsor struct {
	// ID is the record identifier assigned by the store
	ID string `json:"id"`
	// Name is the organization name
	Name string `json:"name"`
	// ContactName is the primary contact person
	ContactName string `json:"contact_name"`
	// ContactEmail is the address notifications are sent to, may be empty
	ContactEmail string `json:"contact_email"`
	// Website is the organization website
	Website string `json:"website"`
	// Created is the store-managed creation timestamp
	Created DateTime `json:"created"`
}

// CollectionName specifies the record store collection for sponsors
func (Sponsor) CollectionName() string {
	return "sponsors"
}
