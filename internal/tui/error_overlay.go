package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	if m.message == "" {
		return ""
	}
	return overlayBoxStyle.Render(errorStyle.Render("Ошибка") + "\n" + m.message)
}
