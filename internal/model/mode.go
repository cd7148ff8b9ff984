package model

// StudyMode identifies a persona/prompt template the user can study with.
type StudyMode string

const (
	StudyModeAdvisor        = StudyMode("ADVISOR")
	StudyModeNotebookLM     = StudyMode("NOTEBOOK_LM")
	StudyModeUniversity     = StudyMode("UNIVERSITY")
	StudyModeGeneral        = StudyMode("GENERAL")
	StudyModeTeaching       = StudyMode("TEACHING")
	StudyModeQA             = StudyMode("QA")
	StudyModeSummary        = StudyMode("SUMMARY")
	StudyModeGuide          = StudyMode("GUIDE")
	StudyModeSmart          = StudyMode("SMART")
	StudyModeFast           = StudyMode("FAST")
	StudyModeGeneralDefault = StudyMode("GENERAL_DEFAULT")
	StudyModeUXImproved     = StudyMode("UX_IMPROVED")
)

// StudyModes lists every mode in display order.
var StudyModes = []StudyMode{
	StudyModeAdvisor,
	StudyModeNotebookLM,
	StudyModeUniversity,
	StudyModeGeneral,
	StudyModeTeaching,
	StudyModeQA,
	StudyModeSummary,
	StudyModeGuide,
	StudyModeSmart,
	StudyModeFast,
	StudyModeGeneralDefault,
	StudyModeUXImproved,
}

func (m StudyMode) IsValid() bool {
	for _, mode := range StudyModes {
		if mode == m {
			return true
		}
	}
	return false
}
