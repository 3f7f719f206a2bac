package command

type ShareNoteCommandResult struct {
	ShareUrl string `json:"shareUrl"`
}

type UnshareNoteCommandResult struct {
	Message string `json:"message"`
}
