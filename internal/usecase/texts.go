package usecase

import (
	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/pkg/local"
)

const MessageEmptyResult = "Error generating response"

var (
	TextAnalyzeAttachedFiles = local.NewSet(
		"تحليل الملفات المرفقة",
		local.NewTrans(local.Eng, "Analyze attached files"),
	)
	TextGenericFailure = local.NewSet(
		"حدث خطأ أثناء التواصل مع المستشار التعليمي. يرجى التأكد من حجم الملفات والمحاولة مرة أخرى.",
		local.NewTrans(local.Eng, "Something went wrong while contacting the study advisor. Check the file sizes and try again."),
	)

	TextWelcome = local.NewSet(
		"مرحباً بك في المستشار التعليمي الذكي",
		local.NewTrans(local.Eng, "Welcome to AI Study Advisor"),
	)
	TextSelectLanguage = local.NewSet(
		"اختر لغة الواجهة\nSelect your preferred interface language to continue",
		local.NewTrans(local.Eng, "Select Interface Language"),
	)
	TextLoginTitle = local.NewSet(
		"تسجيل الدخول\nابدأ رحلتك التعليمية المخصصة الآن",
		local.NewTrans(local.Eng, "Sign In\nStart your personalized educational journey now"),
	)
	TextLoginGoogle = local.NewSet("متابعة باستخدام جوجل", local.NewTrans(local.Eng, "Continue with Google"))
	TextLoginEmail  = local.NewSet("متابعة بالبريد الإلكتروني", local.NewTrans(local.Eng, "Continue with Email"))
	TextBack        = local.NewSet("رجوع", local.NewTrans(local.Eng, "Back"))
	TextSkip        = local.NewSet("تخطي", local.NewTrans(local.Eng, "Skip"))
	TextFinish      = local.NewSet("ابدأ الدراسة", local.NewTrans(local.Eng, "Start Studying"))
	TextProfiling   = local.NewSet(
		"لنخصص تجربتك\nأجب عن بضعة أسئلة لنقدم لك أفضل أسلوب دراسي",
		local.NewTrans(local.Eng, "Personalize Your Experience\nAnswer a few questions for the best study style"),
	)
	TextQuestionLevel = local.NewSet("ما هو مستواك الدراسي حالياً؟", local.NewTrans(local.Eng, "What is your current study level?"))
	TextQuestionMajor = local.NewSet("ما هو تخصصك الأكاديمي؟", local.NewTrans(local.Eng, "What is your academic major?"))

	TextReady = local.NewSet(
		"الوضع الحالي: %s\n%s\n\nاكتب موضوعاً أو سؤالاً، أو أرسل ملفات (PDF، صور، نصوص) ثم اكتب سؤالك أو استخدم /analyze.",
		local.NewTrans(
			local.Eng,
			"Current mode: %s\n%s\n\nWrite a topic or question, or send files (PDF, images, text) and then your question or /analyze.",
		),
	)
	TextHelp = local.NewSet(
		"/modes اختيار أسلوب الدراسة\n/settings الإعدادات\n/analyze تحليل الملفات المرفقة\n/files الملفات المرفقة\n/detach إزالة الملفات المرفقة\n/clear مسح سجل الدراسة\n/logout تسجيل الخروج",
		local.NewTrans(
			local.Eng,
			"/modes choose a study mode\n/settings settings\n/analyze analyze attached files\n/files list attached files\n/detach remove attached files\n/clear clear study history\n/logout log out",
		),
	)
	TextStudyModes   = local.NewSet("أنماط الدراسة", local.NewTrans(local.Eng, "Study Modes"))
	TextModeSelected = local.NewSet("تم اختيار: %s\n%s", local.NewTrans(local.Eng, "Selected: %s\n%s"))
	TextUploadSources = local.NewSet(
		"هذا الوضع يعتمد على المصادر فقط. ارفع المصادر (PDF، صور، نصوص) ثم اطرح سؤالك.",
		local.NewTrans(local.Eng, "This mode answers from your sources only. Upload sources (PDF, images, text) and then ask."),
	)
	TextStillWorking = local.NewSet(
		"ما زلت أعمل على طلبك السابق، انتظر قليلاً.",
		local.NewTrans(local.Eng, "Still working on your previous request, please wait."),
	)
	TextNothingToSend = local.NewSet(
		"اكتب سؤالاً أو أرفق ملفاً أولاً.",
		local.NewTrans(local.Eng, "Write a question or attach a file first."),
	)
	TextFilesAttached = local.NewSet(
		"الملفات المرفقة (%d):\n%s\nاكتب سؤالك أو استخدم /analyze.",
		local.NewTrans(local.Eng, "Attached files (%d):\n%s\nWrite your question or use /analyze."),
	)
	TextNoFiles       = local.NewSet("لا توجد ملفات مرفقة.", local.NewTrans(local.Eng, "No files attached."))
	TextFilesDetached = local.NewSet("تمت إزالة %d من الملفات.", local.NewTrans(local.Eng, "Removed %d files."))
	TextAttachmentFailed = local.NewSet(
		"تعذر قراءة الملف %s، سيتم المتابعة بدونه.",
		local.NewTrans(local.Eng, "Could not read %s, continuing without it."),
	)
	TextHistoryCleared = local.NewSet("تم مسح سجل الدراسة.", local.NewTrans(local.Eng, "Study history cleared."))
	TextLoggedOut      = local.NewSet("تم تسجيل الخروج. أرسل /start للبدء من جديد.", local.NewTrans(local.Eng, "Logged out. Send /start to begin again."))
	TextNoAccess       = local.NewSet("غير مسموح لك باستخدام هذا البوت.", local.NewTrans(local.Eng, "You are not allowed to use this bot."))
	TextServerError    = local.NewSet("حدث خطأ ما، حاول لاحقاً.", local.NewTrans(local.Eng, "Something went wrong. Try later."))
	TextUnknownCommand = local.NewSet("أمر غير معروف.", local.NewTrans(local.Eng, "I don't know that command."))
	TextFailedPrefix   = local.NewSet("⚠️ ", local.NewTrans(local.Eng, "⚠️ "))

	TextSettingsTitle = local.NewSet(
		"الإعدادات\nالأسلوب الافتراضي: %s\nمستوى التفصيل: %s",
		local.NewTrans(local.Eng, "Settings\nDefault style: %s\nDetail level: %s"),
	)
	TextSettingLanguage         = local.NewSet("اللغة", local.NewTrans(local.Eng, "Language"))
	TextSettingTheme            = local.NewSet("المظهر", local.NewTrans(local.Eng, "Theme"))
	TextSettingDefaultStyle     = local.NewSet("أسلوب الشرح الافتراضي", local.NewTrans(local.Eng, "Default Explanation Style"))
	TextSettingDetailLevel      = local.NewSet("مستوى التفصيل", local.NewTrans(local.Eng, "Detail Level"))
	TextSettingGeneralChat      = local.NewSet("السماح بالدردشة العامة بدون مصادر", local.NewTrans(local.Eng, "Allow general chat without sources"))
	TextSettingStrictSources    = local.NewSet("لا تجب إلا من المصادر المرفوعة", local.NewTrans(local.Eng, "Only answer from uploaded sources"))
	TextSettingSaveHistory      = local.NewSet("حفظ سجل المحادثات", local.NewTrans(local.Eng, "Save conversation history"))
	TextSettingClearHistory     = local.NewSet("مسح سجل الدراسة", local.NewTrans(local.Eng, "Clear study history"))
	TextSettingLogout           = local.NewSet("تسجيل الخروج", local.NewTrans(local.Eng, "Log Out"))
	TextSettingClose            = local.NewSet("إغلاق", local.NewTrans(local.Eng, "Close"))
	TextSettingsSaved           = local.NewSet("تم حفظ الإعدادات.", local.NewTrans(local.Eng, "Settings saved."))
)

var themeTexts = map[model.Theme]local.TextSet{
	model.ThemeLight: local.NewSet("فاتح", local.NewTrans(local.Eng, "Light")),
	model.ThemeDark:  local.NewSet("داكن", local.NewTrans(local.Eng, "Dark")),
	model.ThemeAuto:  local.NewSet("تلقائي", local.NewTrans(local.Eng, "Auto")),
}

var detailTexts = map[model.DetailLevel]local.TextSet{
	model.DetailLevelShort:    local.NewSet("مختصر", local.NewTrans(local.Eng, "Short")),
	model.DetailLevelMedium:   local.NewSet("متوسط", local.NewTrans(local.Eng, "Medium")),
	model.DetailLevelDetailed: local.NewSet("مفصل", local.NewTrans(local.Eng, "Detailed")),
}

// Profiling answers are stored as the label the user picked, in their language.
var (
	studyLevelOptions = []local.TextSet{
		local.NewSet("ثانوي", local.NewTrans(local.Eng, "Secondary")),
		local.NewSet("جامعي", local.NewTrans(local.Eng, "University")),
		local.NewSet("دراسات عليا", local.NewTrans(local.Eng, "Post-graduate")),
	}
	majorOptions = []local.TextSet{
		local.NewSet("طب", local.NewTrans(local.Eng, "Medicine")),
		local.NewSet("هندسة", local.NewTrans(local.Eng, "Engineering")),
		local.NewSet("علوم", local.NewTrans(local.Eng, "Science")),
		local.NewSet("إدارة أعمال", local.NewTrans(local.Eng, "Business")),
		local.NewSet("تخصص آخر", local.NewTrans(local.Eng, "Other")),
	}
)
