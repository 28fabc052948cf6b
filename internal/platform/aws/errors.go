package aws

import (
	"errors"

	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/aws/smithy-go"
	"k8s.io/apimachinery/pkg/util/sets"
)

// ErrClusterNotFound is returned when EKS does not know the requested cluster.
var ErrClusterNotFound = errors.New("cluster not found")

var (
	throttlingErrorCodes = sets.New(
		"Throttling",
		"ThrottlingException",
		"TooManyRequestsException",
		"RequestLimitExceeded",
		"RequestThrottled",
	)
	notFoundErrorCodes = sets.New(
		"ResourceNotFoundException",
		"NotFoundException",
	)
)

// IsThrottling returns true if err is an AWS API error (even if it's wrapped)
// that asks the caller to slow down.
func IsThrottling(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return throttlingErrorCodes.Has(apiErr.ErrorCode())
	}
	return false
}

// IsNotFound returns true if err means the requested EKS resource does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var rnf *ekstypes.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}
	// Fall back to the error code for errors that are not modeled
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return notFoundErrorCodes.Has(apiErr.ErrorCode())
	}
	return false
}
