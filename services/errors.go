package services

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid interview status transition")
	ErrQuotaExceeded     = errors.New("monthly interview quota reached for your plan")
	ErrFeatureLocked     = errors.New("this feature is not available on your plan")
	ErrInvalidScore      = errors.New("scores must be between 1 and 5")
	ErrAnalysisFailed    = errors.New("Failed to analyze the interview. Please try again or proceed with manual feedback.")
	ErrAssessmentState   = errors.New("assessment is not in a state that allows this action")
	ErrUnknownQuestion   = errors.New("question does not belong to this assessment")
)
