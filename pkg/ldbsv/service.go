// Package ldbsv turns a GetServiceDetails response document from the
// National Rail OpenLDBSVWS feed into an immutable, strongly typed
// schedule record for one train service.
//
// The package is engine-agnostic: it reads the document through the Node
// interface and performs no I/O, so parses of different documents can run
// concurrently without coordination. Parsing is fail-fast over the whole
// document; a mandatory field failure anywhere aborts with one of the
// typed errors in this package and no partial tree.
package ldbsv

const resultTag = "GetServiceDetailsResult"

// ParseServiceDetails builds the schedule record from a response document.
// The given node is either the result element itself or any ancestor of it
// (typically the document root, with the SOAP envelope still in place).
func ParseServiceDetails(root Node) (*ServiceDetails, error) {
	details := root
	if details.TagName() != resultTag {
		details = findDescendant(root, resultTag)
		if details == nil {
			return nil, MissingFieldError{Field: resultTag}
		}
	}

	serviceType, err := textField(details, "serviceType")
	if err != nil {
		return nil, err
	}

	if serviceType != "train" {
		return nil, UnsupportedServiceTypeError{ServiceType: serviceType}
	}

	generatedAt, err := timeField(details, "generatedAt")
	if err != nil {
		return nil, err
	}

	rid, err := textField(details, "rid")
	if err != nil {
		return nil, err
	}

	uid, err := textField(details, "uid")
	if err != nil {
		return nil, err
	}

	trainID, err := textField(details, "trainid")
	if err != nil {
		return nil, err
	}

	sdd, err := dateField(details, "sdd")
	if err != nil {
		return nil, err
	}

	passengerService, err := boolField(details, "isPassengerService", true)
	if err != nil {
		return nil, err
	}

	charter, err := boolField(details, "isCharter", false)
	if err != nil {
		return nil, err
	}

	category, err := textField(details, "category")
	if err != nil {
		return nil, err
	}

	operator, err := textField(details, "operator")
	if err != nil {
		return nil, err
	}

	operatorCode, err := textField(details, "operatorCode")
	if err != nil {
		return nil, err
	}

	reverseFormation, err := boolField(details, "isReverseFormation", false)
	if err != nil {
		return nil, err
	}

	locationsNode, err := requireChild(details, "locations")
	if err != nil {
		return nil, err
	}

	var locations []ServiceLocation

	for _, node := range locationsNode.Children() {
		location, err := parseServiceLocation(node)
		if err != nil {
			return nil, err
		}

		locations = append(locations, location)
	}

	return &ServiceDetails{
		GeneratedAt: generatedAt,

		RID:     rid,
		UID:     uid,
		RSID:    optionalText(details, "rsid"),
		TrainID: trainID,

		ScheduledDepartureDate: sdd,

		PassengerService: passengerService,
		Charter:          charter,

		Category:     category,
		Operator:     operator,
		OperatorCode: operatorCode,

		CancelReason: optionalText(details, "cancelReason"),
		DelayReason:  optionalText(details, "delayReason"),

		ReverseFormation: reverseFormation,

		Locations: locations,
	}, nil
}

func parseServiceLocation(node Node) (ServiceLocation, error) {
	if node.TagName() != "location" {
		return ServiceLocation{}, InvalidTagNameError{Expected: "location", Found: node.TagName()}
	}

	name, err := textField(node, "locationName")
	if err != nil {
		return ServiceLocation{}, err
	}

	var associations []Association

	if container := node.Child("associations"); container != nil {
		for _, child := range container.Children() {
			association, err := parseAssociation(child)
			if err != nil {
				return ServiceLocation{}, err
			}

			associations = append(associations, association)
		}
	}

	var adhocAlerts []string

	if container := node.Child("adhocAlerts"); container != nil {
		for _, alert := range container.Children() {
			adhocAlerts = append(adhocAlerts, alert.Text())
		}
	}

	var activities []Activity

	if text, err := textField(node, "activities"); err == nil {
		activities, err = parseActivities(text)
		if err != nil {
			return ServiceLocation{}, err
		}
	}

	// Zero already means unknown, so a missing or unparseable length
	// collapses into it.
	length, _ := uintField(node, "length", 16)
	platform, _ := uintField(node, "platform", 8)

	detachFront, err := boolField(node, "detachFront", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	operational, err := boolField(node, "isOperational", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	pass, err := boolField(node, "isPass", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	cancelled, err := boolField(node, "isCancelled", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	platformHidden, err := boolField(node, "platformIsHidden", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	// The feed misspells "suppressed" and we must follow it.
	suppressed, err := boolField(node, "serviceIsSupressed", false)
	if err != nil {
		return ServiceLocation{}, err
	}

	arrival, err := resolveTiming(node, "sta", "arrivalType", "eta", "ata", "arrivalSource")
	if err != nil {
		return ServiceLocation{}, err
	}

	departure, err := resolveTiming(node, "std", "departureType", "etd", "atd", "departureSource")
	if err != nil {
		return ServiceLocation{}, err
	}

	var falseDestination *Location

	if fdName, err := textField(node, "falseDest"); err == nil {
		falseDestination = &Location{
			Name:   fdName,
			Tiploc: optionalText(node, "fdTiploc"),
		}
	}

	return ServiceLocation{
		Location: Location{
			Name:   name,
			CRS:    optionalText(node, "crs"),
			Tiploc: optionalText(node, "tiploc"),
		},

		Associations: associations,
		AdhocAlerts:  adhocAlerts,
		Activities:   activities,

		Length: uint16(length),

		DetachFront: detachFront,
		Operational: operational,
		Pass:        pass,
		Cancelled:   cancelled,

		FalseDestination: falseDestination,

		Platform:       uint8(platform),
		PlatformHidden: platformHidden,
		Suppressed:     suppressed,

		Time: ServiceTime{
			Arrival:   arrival,
			Departure: departure,
		},

		Lateness: optionalText(node, "lateness"),
	}, nil
}
