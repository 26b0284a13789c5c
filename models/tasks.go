package models

// TaskTypeSettingsRefresh is the asynq task type for rebuilding a branch's
// cached settings snapshot after a write.
const TaskTypeSettingsRefresh = "branch:refresh_settings"

// SettingsRefreshPayload is the payload carried by a settings refresh task.
type SettingsRefreshPayload struct {
	BranchID string `json:"branchId"`
}
