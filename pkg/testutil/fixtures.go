package testutil

import (
	"github.com/google/uuid"
)

// Fixed identifiers for deterministic testing.
var (
	TestCaseFileID   = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestEvaluationID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestDocumentID   = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

// Well-formed bureau identifiers for the applicant/company pair.
const (
	TestTenantID      = "default"
	TestApplicantCURP = "GOMC900101HDFLRR03"
	TestCompanyRFC    = "ACM010101AB1"
)
