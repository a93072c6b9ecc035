package service

import (
	"context"

	"github.com/google/uuid"
)

// dueDateWireFormat is the date layout the prediction endpoint parses.
const dueDateWireFormat = "2006-01-02"

// PaymentPrediction pairs a prediction string with the account it was
// produced for.
type PaymentPrediction struct {
	AccountID  uuid.UUID
	Prediction string
}

// PredictPayment fetches the account and forwards its value and due
// date to the prediction service. A missing account fails as not
// found before any outbound call; a prediction failure does not affect
// the stored account.
func (s *AccountService) PredictPayment(ctx context.Context, id uuid.UUID) (*PaymentPrediction, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookupError(err)
	}

	result, err := s.predictor.Predict(ctx, account.Value, account.DueDate.Format(dueDateWireFormat))
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodePredictionUnavailable,
			Message: "failed to get payment prediction",
			Err:     err,
		}
	}

	return &PaymentPrediction{
		AccountID:  account.ID,
		Prediction: result,
	}, nil
}
