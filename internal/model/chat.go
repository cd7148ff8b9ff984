package model

// ChatMessage is one transcript entry. It is never modified after creation.
type ChatMessage struct {
	Role    Role
	Content string
	Mode    StudyMode
	Files   []string
	// Failed marks an assistant message that carries an error text.
	Failed bool
}

func NewUserMessage(content string, mode StudyMode, files []string) ChatMessage {
	return ChatMessage{
		Role:    RoleUser,
		Content: content,
		Mode:    mode,
		Files:   files,
	}
}

func NewAssistantMessage(content string, mode StudyMode, failed bool) ChatMessage {
	return ChatMessage{
		Role:    RoleAssistant,
		Content: content,
		Mode:    mode,
		Failed:  failed,
	}
}
