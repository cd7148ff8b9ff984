// Package catalog holds the fixed set of study modes offered to the user.
package catalog

import (
	"errors"
	"fmt"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/pkg/local"
)

var ErrUnknownMode = errors.New("unknown study mode")

type ModeConfig struct {
	ID           model.StudyMode
	Title        local.TextSet
	Description  local.TextSet
	SystemPrompt string
}

var modes = map[model.StudyMode]ModeConfig{
	model.StudyModeAdvisor: {
		ID: model.StudyModeAdvisor,
		Title: local.NewSet(
			"مستشار تعليمي",
			local.NewTrans(local.Eng, "Study Advisor"),
		),
		Description: local.NewSet(
			"أسلوب احترافي وهادئ للتحليل الأكاديمي الشامل.",
			local.NewTrans(local.Eng, "A calm, professional style for thorough academic analysis."),
		),
		SystemPrompt: "تصرّف كمستشار تعليمي وخبير ذكاء اصطناعي. قدم رداً دراسياً واضحاً، مرتباً، وقابلاً للتطبيق.",
	},
	model.StudyModeNotebookLM: {
		ID: model.StudyModeNotebookLM,
		Title: local.NewSet(
			"تجربة NotebookLM",
			local.NewTrans(local.Eng, "NotebookLM Experience"),
		),
		Description: local.NewSet(
			"تحليل صارم للمصادر المرفوعة فقط بدون معرفة خارجية.",
			local.NewTrans(local.Eng, "Strict analysis of uploaded sources only, no outside knowledge."),
		),
		SystemPrompt: `تصرّف كمساعد ذكاء اصطناعي يعتمد كلياً على المصادر (Source-Grounded).
القواعد الصارمة:
1. لا تجب بناءً على معرفتك الخارجية؛ استخدم فقط المعلومات الموجودة في الملفات المرفقة.
2. إذا كانت المعلومة غير موجودة في الملفات، صرح بذلك بوضوح: "هذه المعلومة غير متوفرة في المصادر المرفقة".
3. استخدم الاقتباسات أو أشر إلى "المصدر" عند ذكر حقائق معينة.
4. الشرح يجب أن يكون منظماً أكاديمياً (مقدمة، نقاط تحليلية، استنتاج).`,
	},
	model.StudyModeUniversity: {
		ID: model.StudyModeUniversity,
		Title: local.NewSet(
			"مصادر جامعية",
			local.NewTrans(local.Eng, "University Sources"),
		),
		Description: local.NewSet(
			"شروحات أكاديمية مبنية على المناهج والكتب الجامعية الرسمية.",
			local.NewTrans(local.Eng, "Academic explanations based on official university curricula and textbooks."),
		),
		SystemPrompt: "تصرّف كأستاذ جامعي وخبير أكاديمي. قدم شرحاً منظماً للموضوع يعتمد على المراجع العلمية والمناهج الجامعية الرسمية.",
	},
	model.StudyModeGeneral: {
		ID: model.StudyModeGeneral,
		Title: local.NewSet(
			"دراسة عامة",
			local.NewTrans(local.Eng, "General Study"),
		),
		Description: local.NewSet(
			"شرح المفاهيم خطوة بخطوة للمبتدئين.",
			local.NewTrans(local.Eng, "Step-by-step explanations for beginners."),
		),
		SystemPrompt: "تصرّف كمعلّم ذكي يشرح المفاهيم للطالب خطوة بخطوة.",
	},
	model.StudyModeTeaching: {
		ID: model.StudyModeTeaching,
		Title: local.NewSet(
			"وضع التعليم (Teaching)",
			local.NewTrans(local.Eng, "Teaching Mode"),
		),
		Description: local.NewSet(
			"الفهم العميق من الصفر حتى الإتقان.",
			local.NewTrans(local.Eng, "Deep understanding from scratch to mastery."),
		),
		SystemPrompt: "تصرّف كمعلّم يشرح لطالب يريد الفهم وليس الحفظ.",
	},
	model.StudyModeQA: {
		ID: model.StudyModeQA,
		Title: local.NewSet(
			"سؤال وجواب",
			local.NewTrans(local.Eng, "Q&A"),
		),
		Description: local.NewSet(
			"إجابات مباشرة ودقيقة على أسئلة محددة.",
			local.NewTrans(local.Eng, "Direct, precise answers to specific questions."),
		),
		SystemPrompt: "تصرّف كمدرّس يجيب على سؤال طالب بدقة.",
	},
	model.StudyModeSummary: {
		ID: model.StudyModeSummary,
		Title: local.NewSet(
			"ملخص دراسي",
			local.NewTrans(local.Eng, "Study Summary"),
		),
		Description: local.NewSet(
			"تحويل المحتوى إلى نقاط مركزة للمراجعة.",
			local.NewTrans(local.Eng, "Turns content into focused review points."),
		),
		SystemPrompt: "تصرّف كخبير تلخيص دراسي.",
	},
	model.StudyModeGuide: {
		ID: model.StudyModeGuide,
		Title: local.NewSet(
			"الدليل الكامل",
			local.NewTrans(local.Eng, "Complete Guide"),
		),
		Description: local.NewSet(
			"دليل دراسي متكامل وشامل للموضوع.",
			local.NewTrans(local.Eng, "A complete, comprehensive study guide for the topic."),
		),
		SystemPrompt: "تصرّف كمصمم دليل دراسي احترافي.",
	},
	model.StudyModeSmart: {
		ID: model.StudyModeSmart,
		Title: local.NewSet(
			"الدراسة الذكية",
			local.NewTrans(local.Eng, "Smart Study"),
		),
		Description: local.NewSet(
			"تقنيات لتقليل الوقت وزيادة الفهم.",
			local.NewTrans(local.Eng, "Techniques to spend less time and understand more."),
		),
		SystemPrompt: "تصرّف كمدرّب تعلم ذكي.",
	},
	model.StudyModeFast: {
		ID: model.StudyModeFast,
		Title: local.NewSet(
			"الدراسة السريعة",
			local.NewTrans(local.Eng, "Fast Study"),
		),
		Description: local.NewSet(
			"مراجعة ما قبل الامتحانات والتركيز على المهم.",
			local.NewTrans(local.Eng, "Pre-exam review focused on what matters."),
		),
		SystemPrompt: "تصرّف كمدرّس تجهيز امتحانات.",
	},
	model.StudyModeGeneralDefault: {
		ID: model.StudyModeGeneralDefault,
		Title: local.NewSet(
			"الوضع العام",
			local.NewTrans(local.Eng, "General Mode"),
		),
		Description: local.NewSet(
			"مساعد تعليمي عام (سؤال وجواب تلقائي).",
			local.NewTrans(local.Eng, "A general study assistant (automatic Q&A)."),
		),
		SystemPrompt: "تصرّف كمساعد تعليمي عام.",
	},
	model.StudyModeUXImproved: {
		ID: model.StudyModeUXImproved,
		Title: local.NewSet(
			"تحسين تجربة الطالب",
			local.NewTrans(local.Eng, "Better Student Experience"),
		),
		Description: local.NewSet(
			"شرح واضح ومريح يقلل من التشتت المعلوماتي.",
			local.NewTrans(local.Eng, "Clear, comfortable explanations that reduce information overload."),
		),
		SystemPrompt: "تصرّف كخبير تجربة مستخدم تعليمية.",
	},
}

// Lookup returns the configuration of mode.
func Lookup(mode model.StudyMode) (ModeConfig, error) {
	config, ok := modes[mode]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return config, nil
}

// List returns every mode configuration in display order.
func List() []ModeConfig {
	configs := make([]ModeConfig, 0, len(model.StudyModes))
	for _, mode := range model.StudyModes {
		configs = append(configs, modes[mode])
	}
	return configs
}
