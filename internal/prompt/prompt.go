// Package prompt assembles the instruction and content parts of a single
// generation request.
package prompt

import (
	"fmt"
	"strings"

	"github.com/i7k15/ai-study-advisor/internal/catalog"
	"github.com/i7k15/ai-study-advisor/internal/model"
)

const (
	DefaultModel = "gemini-3-pro-preview"

	Temperature float32 = 0.7
	TopP        float32 = 0.95
)

// SystemRules are prepended to every system instruction.
const SystemRules = `
اللغة: العربية الفصحى المبسطة.
التنسيق: عناوين واضحة، نقاط مرقمة، فقرات قصيرة.
الأسلوب: احترافي، هادئ، مباشر، لا حشو، لا تكرار.
الكلمات المفتاحية: يتم إبرازها باستخدام التنسيق الغامق (Bold).
ممنوع: استخدام الإيموجي تماماً، الكلام الإنشائي، الإطالة بلا فائدة.
الهدف: تقديم رد دراسي مرتب وقابل للتطبيق فوراً.
`

const (
	DetailShortInstruction    = "اجعل الإجابة مختصرة جداً ومركزة."
	DetailMediumInstruction   = "اجعل مستوى التفصيل متوسطاً وشاملاً لأهم النقاط."
	DetailDetailedInstruction = "قدم شرحاً مفصلاً ومعمقاً مع كافة التفاصيل الممكنة."

	StrictSourcesInstruction = "\nتحذير صارم: لا تجب إلا من واقع الملفات المرفقة فقط. إذا لم تكن المعلومة موجودة في الملفات، قل بوضوح أنك لا تعرف لأن المصادر لا تحتوي عليها."

	FilesContextNote = "ملاحظة: إذا تم تقديم ملفات (صور أو مستندات)، فاجعلها هي السياق الأساسي لإجابتك."

	TopicLabel = "الموضوع/السؤال"
)

type InlineData struct {
	MimeType string
	Data     []byte
}

// Part is either a text or an inline-data part.
type Part struct {
	Text       string
	InlineData *InlineData
}

type Request struct {
	SystemInstruction string
	Parts             []Part
	Temperature       float32
	TopP              float32
}

// Compose builds the request for one turn. It does not modify its arguments.
func Compose(
	topic string,
	mode model.StudyMode,
	files []model.AttachedFile,
	profile model.UserProfile,
) (Request, error) {
	config, err := catalog.Lookup(mode)
	if err != nil {
		return Request{}, fmt.Errorf("failed to resolve mode: %w", err)
	}

	var b strings.Builder
	b.WriteString(SystemRules)
	b.WriteString("\n\n")
	b.WriteString(config.SystemPrompt)
	b.WriteString("\n\n")
	b.WriteString(DetailInstruction(profile.DetailLevel))
	b.WriteString(SourceInstruction(profile, len(files)))
	b.WriteString("\n\n")
	b.WriteString(FilesContextNote)

	parts := make([]Part, 0, len(files)+1)
	parts = append(parts, Part{Text: TopicLabel + ": " + topic})
	for _, file := range files {
		parts = append(
			parts, Part{
				InlineData: &InlineData{
					MimeType: file.MimeType,
					Data:     file.Data,
				},
			},
		)
	}

	return Request{
		SystemInstruction: b.String(),
		Parts:             parts,
		Temperature:       Temperature,
		TopP:              TopP,
	}, nil
}

// DetailInstruction falls back to the medium instruction for unknown levels.
func DetailInstruction(level model.DetailLevel) string {
	switch level {
	case model.DetailLevelShort:
		return DetailShortInstruction
	case model.DetailLevelDetailed:
		return DetailDetailedInstruction
	default:
		return DetailMediumInstruction
	}
}

// SourceInstruction is empty unless strict sources are on and files are attached.
func SourceInstruction(profile model.UserProfile, fileCount int) string {
	if profile.StrictSourcesOnly && fileCount > 0 {
		return StrictSourcesInstruction
	}
	return ""
}
