package ldbsv

import "time"

// AssociationCategory is how two services relate at a location.
type AssociationCategory string

const (
	// Another train joins this train.
	AssociationJoin AssociationCategory = "Join"
	// Another train divides from this train.
	AssociationDivide AssociationCategory = "Divide"
	// This train continues a service linked from another.
	AssociationLinkedFrom AssociationCategory = "LinkedFrom"
	// This train's service continues as another linked train.
	AssociationLinkedTo AssociationCategory = "LinkedTo"
)

var associationCategories = map[string]AssociationCategory{
	"join":       AssociationJoin,
	"divide":     AssociationDivide,
	"linkedFrom": AssociationLinkedFrom,
	"linkedTo":   AssociationLinkedTo,
}

// Association links this service to another at a location. RID and UID
// identify the other service for a separate lookup; they are never
// resolved here.
type Association struct {
	Category AssociationCategory `json:"category" groups:"basic"`

	RID     string `json:"rid" groups:"basic"`
	UID     string `json:"uid" groups:"basic"`
	TrainID string `json:"trainid" groups:"basic"`
	RSID    string `json:"rsid,omitempty" groups:"basic"`

	ScheduledDepartureDate time.Time `json:"sdd" groups:"basic"`

	// The associated service's origin and destination, when given.
	Origin      *Location `json:"origin,omitempty" groups:"detailed"`
	Destination *Location `json:"destination,omitempty" groups:"detailed"`

	// The association is cancelled and will no longer happen.
	Cancelled bool `json:"cancelled,omitempty" groups:"basic"`
}

func parseAssociation(node Node) (Association, error) {
	if node.TagName() != "association" {
		return Association{}, InvalidTagNameError{Expected: "association", Found: node.TagName()}
	}

	text, err := textField(node, "category")
	if err != nil {
		return Association{}, err
	}

	category, known := associationCategories[text]
	if !known {
		return Association{}, InvalidAssociationCategoryError{Value: text}
	}

	rid, err := textField(node, "rid")
	if err != nil {
		return Association{}, err
	}

	uid, err := textField(node, "uid")
	if err != nil {
		return Association{}, err
	}

	trainID, err := textField(node, "trainid")
	if err != nil {
		return Association{}, err
	}

	sdd, err := dateField(node, "sdd")
	if err != nil {
		return Association{}, err
	}

	cancelled, err := boolField(node, "cancelled", false)
	if err != nil {
		return Association{}, err
	}

	return Association{
		Category: category,

		RID:     rid,
		UID:     uid,
		TrainID: trainID,
		RSID:    optionalText(node, "rsid"),

		ScheduledDepartureDate: sdd,

		Origin:      optionalLocation(node, "origin", "originCRS", "originTiploc"),
		Destination: optionalLocation(node, "destination", "destCRS", "destTiploc"),

		Cancelled: cancelled,
	}, nil
}

// optionalLocation assembles a Location from sibling name/CRS/TIPLOC tags,
// or nil when the name tag is absent.
func optionalLocation(node Node, nameTag, crsTag, tiplocTag string) *Location {
	name, err := textField(node, nameTag)
	if err != nil {
		return nil
	}

	return &Location{
		Name:   name,
		CRS:    optionalText(node, crsTag),
		Tiploc: optionalText(node, tiplocTag),
	}
}
