package render

import "github.com/railquery/railquery/pkg/ldbsv"

// CIF train category codes.
// https://wiki.openraildata.com/index.php?title=CIF_Codes
var categoryNames = map[string]string{
	"OL": "London Underground/Metro Service",
	"OU": "Unadvertised Ordinary Passenger",
	"OO": "Ordinary Passenger",
	"OS": "Staff Train",

	"XC": "Channel Tunnel",
	"XD": "Sleeper",
	"XI": "International",
	"XR": "Motorail",
	"XU": "Unadvertised Express",
	"XX": "Express Passenger",
	"XZ": "Sleeper (Domestic)",

	"BR": "Rail replacement bus",
	"BS": "Bus",
	"SS": "Ship",

	"EE": "Empty Coaching Stock (ECS)",
	"EL": "ECS, London Underground/Metro Service",
	"ES": "ECS and Staff",

	"JJ": "Postal",
	"PM": "Post Office Controlled Parcels",
	"PP": "Parcels",
	"PV": "Empty NPCCS",

	"DD": "Departmental",
	"DH": "Civil Engineer",
	"DI": "Mechanical & Electrical Engineer",
	"DQ": "Stores",
	"DT": "Test",
	"DY": "Signal & Telecommunications Engineer",

	"ZB": "Locomotive & Brake Van",
	"ZZ": "Light Locomotive",

	"J2": "RfD Automotive (Components)",
	"H2": "RfD Automotive (Vehicles)",
	"J3": "RfD Edible Products (UK Contracts)",
	"J4": "RfD Industrial Minerals (UK Contracts)",
	"J5": "RfD Chemicals (UK Contracts)",
	"J6": "RfD Building Materials (UK Contracts)",
	"J8": "RfD General Merchandise (UK Contracts)",
	"H8": "RfD European",
	"J9": "RfD Freightliner (Contracts)",
	"H9": "RfD Freightliner (Other)",

	"A0": "Coal (Distributive)",
	"E0": "Coal (Electricity) MGR",
	"B0": "Coal (Other) and Nuclear",
	"B1": "Metals",
	"B4": "Aggregates",
	"B5": "Domestic and Industrial Waste",
	"B6": "Building Materials (TLF)",
	"B7": "Petroleum Products",

	"H0": "RfD European Channel Tunnel (Mixed Business)",
	"H1": "RfD European Channel Tunnel Intermodal",
	"H3": "RfD European Channel Tunnel Automotive",
	"H4": "RfD European Channel Tunnel Contract Services",
	"H5": "RfD European Channel Tunnel Haulmark",
	"H6": "RfD European Channel Tunnel Joint Venture",
}

func categoryName(code string) string {
	if name, known := categoryNames[code]; known {
		return name
	}

	return "unknown"
}

var activityNames = map[ldbsv.Activity]string{
	ldbsv.ActivityStopDetach:                          "stops to detach vehicles",
	ldbsv.ActivityStopAttachDetach:                    "stops to attach and detach vehicles",
	ldbsv.ActivityStopAttach:                          "stops to attach vehicles",
	ldbsv.ActivityStopOrShuntForPass:                  "stops or shunts for other trains to pass",
	ldbsv.ActivityAttachDetachAssistingLocomotive:     "attaches or detaches an assisting locomotive",
	ldbsv.ActivityStopsForBankingLocomotive:           "stops for banking locomotive",
	ldbsv.ActivityStopsToChangeCrew:                   "stops to change train crew",
	ldbsv.ActivityStopsToSetDownPassengers:            "set down only",
	ldbsv.ActivityStopsForExamination:                 "stops for examination",
	ldbsv.ActivityPassengerCountPoint:                 "passenger count point",
	ldbsv.ActivityTicketCollectionAndExaminationPoint: "ticket collection and examination point",
	ldbsv.ActivityTicketExaminationPoint:              "ticket examination point",
	ldbsv.ActivityTicketExaminationPointFirstClass:    "ticket examination point (first class)",
	ldbsv.ActivitySelectiveTicketExaminationPoint:     "selective ticket examination point",
	ldbsv.ActivityStopsToChangeLocomotive:             "stops to change locomotive",
	ldbsv.ActivityStopNotAdvertised:                   "stop not advertised",
	ldbsv.ActivityStopsForOtherReasons:                "stops for other operating reasons",
	ldbsv.ActivityTrainLocomotiveOnRear:               "train locomotive on rear",
	ldbsv.ActivityPropellingBetweenPointsShown:        "propelling between points shown",
	ldbsv.ActivityStopsWhenRequired:                   "request stop",
	ldbsv.ActivityStopsForReversingMove:               "stops for reversing move",
	ldbsv.ActivityStopsForLocomotiveToRunRoundTrain:   "stops for locomotive to run round train",
	ldbsv.ActivityStopsForRailwayPersonnel:            "stops for railway personnel only",
	ldbsv.ActivityStopsToTakeUpAndSetDownPassengers:   "calls to take up and set down passengers",
	ldbsv.ActivityTrainBegins:                         "train begins",
	ldbsv.ActivityTrainFinishes:                       "train finishes",
	ldbsv.ActivityStopsOrPassesForTabletStaffOrToken:  "stops or passes for tablet, staff or token",
	ldbsv.ActivityStopsToTakeUpPassengers:             "pick up only",
	ldbsv.ActivityStopsForWateringOfCoaches:           "stops for watering of coaches",
	ldbsv.ActivityPassesAnotherTrain:                  "passes another train at crossing point",
}

func activityName(activity ldbsv.Activity) string {
	if name, known := activityNames[activity]; known {
		return name
	}

	return string(activity)
}
