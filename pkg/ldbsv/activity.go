package ldbsv

import "strings"

// Activity is one of the fixed CIF operational codes describing what a
// service does at a location.
//
// See Activity Codes on the Open Rail Data Wiki for the full table.
type Activity string

const (
	// Stops to detach vehicles. (-D)
	ActivityStopDetach Activity = "StopDetach"
	// Stops to attach and detach vehicles. (-T)
	ActivityStopAttachDetach Activity = "StopAttachDetach"
	// Stops to attach vehicles. (-U)
	ActivityStopAttach Activity = "StopAttach"
	// Stops or shunts for other trains to pass. (A)
	ActivityStopOrShuntForPass Activity = "StopOrShuntForPass"
	// Attaches or detaches an assisting locomotive. (AE)
	ActivityAttachDetachAssistingLocomotive Activity = "AttachDetachAssistingLocomotive"
	// Shows as 'X' on arrival. (AX)
	ActivityShowsAsXOnArrival Activity = "ShowsAsXOnArrival"
	// Stops for banking locomotive. (BL)
	ActivityStopsForBankingLocomotive Activity = "StopsForBankingLocomotive"
	// Stops to change train crew. (C)
	ActivityStopsToChangeCrew Activity = "StopsToChangeCrew"
	// Stops to set down passengers. Passengers may not board here. (D)
	ActivityStopsToSetDownPassengers Activity = "StopsToSetDownPassengers"
	// Stops for examination. (E)
	ActivityStopsForExamination Activity = "StopsForExamination"
	// GBPRTT data to add. (G)
	ActivityGBPRTTDataToAdd Activity = "GBPRTTDataToAdd"
	// Notional activity to prevent WTT columns merge. (H)
	ActivityNotional Activity = "Notional"
	// Notional activity, third column variant. (HH)
	ActivityNotionalThirdColumn Activity = "NotionalThirdColumn"
	// Passenger count point. (K)
	ActivityPassengerCountPoint Activity = "PassengerCountPoint"
	// Ticket collection and examination point. (KC)
	ActivityTicketCollectionAndExaminationPoint Activity = "TicketCollectionAndExaminationPoint"
	// Ticket examination point. (KE)
	ActivityTicketExaminationPoint Activity = "TicketExaminationPoint"
	// Ticket examination point, first class only. (KF)
	ActivityTicketExaminationPointFirstClass Activity = "TicketExaminationPointFirstClass"
	// Selective ticket examination point. (KS)
	ActivitySelectiveTicketExaminationPoint Activity = "SelectiveTicketExaminationPoint"
	// Stops to change locomotive. (L)
	ActivityStopsToChangeLocomotive Activity = "StopsToChangeLocomotive"
	// Stop not advertised. (N)
	ActivityStopNotAdvertised Activity = "StopNotAdvertised"
	// Stops for other operating reasons. (OP)
	ActivityStopsForOtherReasons Activity = "StopsForOtherReasons"
	// Train locomotive on rear. (OR)
	ActivityTrainLocomotiveOnRear Activity = "TrainLocomotiveOnRear"
	// Propelling between points shown. (PR)
	ActivityPropellingBetweenPointsShown Activity = "PropellingBetweenPointsShown"
	// Stops when required. (R)
	ActivityStopsWhenRequired Activity = "StopsWhenRequired"
	// Stops for reversing move, or the driver changes ends. (RM)
	ActivityStopsForReversingMove Activity = "StopsForReversingMove"
	// Stops for locomotive to run round train. (RR)
	ActivityStopsForLocomotiveToRunRoundTrain Activity = "StopsForLocomotiveToRunRoundTrain"
	// Stops for railway personnel only. (S)
	ActivityStopsForRailwayPersonnel Activity = "StopsForRailwayPersonnel"
	// Stops to take up and set down passengers. (T)
	ActivityStopsToTakeUpAndSetDownPassengers Activity = "StopsToTakeUpAndSetDownPassengers"
	// Train begins. (TB)
	ActivityTrainBegins Activity = "TrainBegins"
	// Train finishes. (TF)
	ActivityTrainFinishes Activity = "TrainFinishes"
	// Activity requested for TOPS reporting purposes. (TS)
	ActivityRequestedForTOPS Activity = "RequestedForTOPS"
	// Stops or passes for tablet, staff or token. (TW)
	ActivityStopsOrPassesForTabletStaffOrToken Activity = "StopsOrPassesForTabletStaffOrToken"
	// Stops to take up passengers. Passengers may not exit here. (U)
	ActivityStopsToTakeUpPassengers Activity = "StopsToTakeUpPassengers"
	// Stops for watering of coaches. (W)
	ActivityStopsForWateringOfCoaches Activity = "StopsForWateringOfCoaches"
	// Passes another train at crossing point on a single line. (X)
	ActivityPassesAnotherTrain Activity = "PassesAnotherTrain"
	// No activity.
	ActivityNone Activity = "None"
)

var activityCodes = map[string]Activity{
	"-D": ActivityStopDetach,
	"-T": ActivityStopAttachDetach,
	"-U": ActivityStopAttach,
	"A":  ActivityStopOrShuntForPass,
	"AE": ActivityAttachDetachAssistingLocomotive,
	"AX": ActivityShowsAsXOnArrival,
	"BL": ActivityStopsForBankingLocomotive,
	"C":  ActivityStopsToChangeCrew,
	"D":  ActivityStopsToSetDownPassengers,
	"E":  ActivityStopsForExamination,
	"G":  ActivityGBPRTTDataToAdd,
	"H":  ActivityNotional,
	"HH": ActivityNotionalThirdColumn,
	"K":  ActivityPassengerCountPoint,
	"KC": ActivityTicketCollectionAndExaminationPoint,
	"KE": ActivityTicketExaminationPoint,
	"KF": ActivityTicketExaminationPointFirstClass,
	"KS": ActivitySelectiveTicketExaminationPoint,
	"L":  ActivityStopsToChangeLocomotive,
	"N":  ActivityStopNotAdvertised,
	"OP": ActivityStopsForOtherReasons,
	"OR": ActivityTrainLocomotiveOnRear,
	"PR": ActivityPropellingBetweenPointsShown,
	"R":  ActivityStopsWhenRequired,
	"RM": ActivityStopsForReversingMove,
	"RR": ActivityStopsForLocomotiveToRunRoundTrain,
	"S":  ActivityStopsForRailwayPersonnel,
	"T":  ActivityStopsToTakeUpAndSetDownPassengers,
	"TB": ActivityTrainBegins,
	"TF": ActivityTrainFinishes,
	"TS": ActivityRequestedForTOPS,
	"TW": ActivityStopsOrPassesForTabletStaffOrToken,
	"U":  ActivityStopsToTakeUpPassengers,
	"W":  ActivityStopsForWateringOfCoaches,
	"X":  ActivityPassesAnotherTrain,
	"":   ActivityNone,
}

// parseActivities decodes the packed activities field. The feed packs
// activity codes into fixed 2 character chunks, space padded, with the
// last chunk possibly a single character. Unknown chunks abort the parse.
// Runs of adjacent "None" markers collapse to a single entry. An empty
// field decodes to nil, meaning no activity list at all.
func parseActivities(text string) ([]Activity, error) {
	if text == "" {
		return nil, nil
	}

	var activities []Activity

	for start := 0; start < len(text); start += 2 {
		end := start + 2
		if end > len(text) {
			end = len(text)
		}

		chunk := strings.TrimSpace(text[start:end])

		activity, known := activityCodes[chunk]
		if !known {
			return nil, InvalidActivityError{Code: chunk}
		}

		if activity == ActivityNone && len(activities) > 0 && activities[len(activities)-1] == ActivityNone {
			continue
		}

		activities = append(activities, activity)
	}

	return activities, nil
}
