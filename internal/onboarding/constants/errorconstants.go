/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package constants

import "github.com/venuely/onboarding/internal/system/error/serviceerror"

// Client errors.

// ErrorInvalidPath is returned when the requested onboarding path is unknown.
var ErrorInvalidPath = serviceerror.ServiceError{
	Code:             "OBD-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid onboarding path",
	ErrorDescription: "The onboarding path must be either business or personal",
}

// ErrorStepKeyRequired is returned when a progress request does not name a step.
var ErrorStepKeyRequired = serviceerror.ServiceError{
	Code:             "OBD-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "The step query parameter is required",
}

// ErrorStepNotInPath is returned when the requested step is not part of the requested path.
var ErrorStepNotInPath = serviceerror.ServiceError{
	Code:             "OBD-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Step not found",
	ErrorDescription: "The step is not part of the onboarding path",
}

// Server errors.

// ErrorTotalsNotInitialized is returned when the path totals were not derived before serving.
var ErrorTotalsNotInitialized = serviceerror.ServiceError{
	Code:             "OBD-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Onboarding path totals are not initialized",
}
