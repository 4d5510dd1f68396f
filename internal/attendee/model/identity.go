package model

// Identity is the raw attendee row read from the ticketing database,
// before gender, sports and school are resolved.
type Identity struct {
	ID             int64  `gorm:"column:id"`
	TicketID       int64  `gorm:"column:ticket_id"`
	FirstName      string `gorm:"column:first_name"`
	LastName       string `gorm:"column:last_name"`
	OrderReference string `gorm:"column:order_reference"`
	ReferenceIndex int    `gorm:"column:reference_index"`
	GenderAnswer   string `gorm:"column:gender_answer"`
}

// Reference returns the printed order reference of the attendee.
func (i Identity) Reference() string {
	return Reference{Order: i.OrderReference, Index: i.ReferenceIndex}.String()
}
