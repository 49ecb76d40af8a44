// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinStudyYear = 1900
	MaxStudyYear = 2100

	requiredMessage = "This field is required."
)

// Named is the wire form of a category or country reference
type Named struct {
	Name string `json:"name"`
}

// Effect is one effect size reported by an experiment
type Effect struct {
	Number         int      `json:"effect_size_nr"`
	TestTime       string   `json:"test_time"`
	EffectSizeType string   `json:"effect_size_type"`
	Outcome        string   `json:"outcome"`
	OutcomeFull    string   `json:"outcome_full"`
	TestName       string   `json:"test_name,omitempty"`
	D              *float64 `json:"d,omitempty"`
	DVar           *float64 `json:"d_var,omitempty"`
	N1             *int     `json:"n1i,omitempty"`
	N2             *int     `json:"n2i,omitempty"`
}

// Experiment is one intervention reported by a study
type Experiment struct {
	Number            int      `json:"experiment_nr"`
	Source            string   `json:"source,omitempty"`
	Intervention      string   `json:"intervention"`
	InterventionOp    string   `json:"intervention_op"`
	TargetPopulation  string   `json:"target_population"`
	MeanAge           *float64 `json:"mean_age,omitempty"`
	SampleSize        int      `json:"ni"`
	StudyDesign       string   `json:"study_design"`
	ParticipantDesign string   `json:"participant_design"`
	Implemented       string   `json:"implemented"`
	DurationWeeks     *float64 `json:"duration_week,omitempty"`
	Risks             string   `json:"risks"`
	Effects           []Effect `json:"effects"`
}

// Study is a published research study and the experiments it reports
type Study struct {
	ID           int64        `json:"study_id"`
	Title        string       `json:"title"`
	Authors      string       `json:"authors"`
	Keywords     string       `json:"keywords"`
	Abstract     string       `json:"abstract"`
	Category     *Named       `json:"category"`
	Country      *Named       `json:"country"`
	Year         int          `json:"study_year"`
	DOI          string       `json:"doi"`
	PeerReviewed bool         `json:"peer_reviewed"`
	Approved     bool         `json:"approved"`
	Uploader     string       `json:"uploader"`
	Downloads    int          `json:"nr_downloads"`
	Experiments  []Experiment `json:"experiments"`
}

var (
	studyDesigns       = []string{"RCT", "QES", "N/A"}
	participantDesigns = []string{"within", "between", "mixed", "N/A"}
	implementations    = []string{"researcher", "teacher", "paraprofessional", "N/A"}
	risks              = []string{"low", "moderate", "high", "NA"}
	testTimes          = []string{"baseline(pre-test)", "post-test", "follow-up", "N/A"}
	effectSizeTypes    = []string{"SMD", "RR/OR", "N/A"}
)

// ValidationError maps field names onto their problems.  It is written to clients as is.
type ValidationError map[string][]string

func (ve ValidationError) Error() string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}

	sort.Strings(fields)
	return fmt.Sprintf("invalid study: %s", strings.Join(fields, ", "))
}

// Is allows errors.Is(err, ErrInvalid) for any ValidationError
func (ve ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (ve ValidationError) add(field, message string) {
	ve[field] = append(ve[field], message)
}

func (ve ValidationError) choice(field, value string, choices []string) {
	if len(value) == 0 {
		return
	}

	for _, c := range choices {
		if c == value {
			return
		}
	}

	ve.add(field, fmt.Sprintf("%q is not a valid choice.", value))
}

// Validate checks the fields a client supplies.  A nil return means the study may be stored.
func (s Study) Validate() error {
	ve := make(ValidationError)
	if len(strings.TrimSpace(s.Title)) == 0 {
		ve.add("title", requiredMessage)
	}

	if s.Year != 0 && (s.Year < MinStudyYear || s.Year > MaxStudyYear) {
		ve.add("study_year", fmt.Sprintf("Ensure this value is between %d and %d.", MinStudyYear, MaxStudyYear))
	}

	if s.Category != nil && len(s.Category.Name) == 0 {
		ve.add("category", requiredMessage)
	}

	if s.Country != nil && len(s.Country.Name) == 0 {
		ve.add("country", requiredMessage)
	}

	for _, e := range s.Experiments {
		ve.choice("experiments.study_design", e.StudyDesign, studyDesigns)
		ve.choice("experiments.participant_design", e.ParticipantDesign, participantDesigns)
		ve.choice("experiments.implemented", e.Implemented, implementations)
		ve.choice("experiments.risks", e.Risks, risks)
		if e.SampleSize < 0 {
			ve.add("experiments.ni", "Ensure this value is greater than or equal to 0.")
		}

		for _, f := range e.Effects {
			ve.choice("experiments.effects.test_time", f.TestTime, testTimes)
			ve.choice("experiments.effects.effect_size_type", f.EffectSizeType, effectSizeTypes)
		}
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}

// Clone returns a deep copy, so stored studies never share memory with callers
func (s Study) Clone() Study {
	if s.Category != nil {
		c := *s.Category
		s.Category = &c
	}

	if s.Country != nil {
		c := *s.Country
		s.Country = &c
	}

	if s.Experiments != nil {
		experiments := make([]Experiment, len(s.Experiments))
		for i, e := range s.Experiments {
			e.Effects = append([]Effect(nil), e.Effects...)
			experiments[i] = e
		}

		s.Experiments = experiments
	}

	return s
}
