package models

type SetJobRoleRequest struct {
	JobRole string `json:"job_role"`
}

type ChatInputRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	Session SessionState `json:"session"`
	View    PageView     `json:"view"`
}

type JobRolesResponse struct {
	Roles   []JobRole `json:"roles"`
	Default JobRole   `json:"default"`
}

type UploadAcceptedResponse struct {
	JobID   string          `json:"job_id"`
	Session SessionResponse `json:"state"`
}
