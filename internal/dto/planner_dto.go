package dto

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type EOPGenerationRequest struct {
	FloodData    string `json:"flood_data" validate:"required"`
	ResourceData string `json:"resource_data" validate:"required"`
	Location     string `json:"location" validate:"required"`
}

type EOPMetadata struct {
	Location    string `json:"location"`
	GeneratedAt string `json:"generated_at"`
	ModelUsed   string `json:"model_used"`
}

type EOPGenerationResponse struct {
	Status    string       `json:"status"`
	Message   string       `json:"message,omitempty"`
	EOPReport string       `json:"eop_report"`
	Metadata  *EOPMetadata `json:"metadata,omitempty"`
}

type TaskGenerationRequest struct {
	EmergencyOperationsPlan string `json:"emergency_operations_plan" validate:"required"`
	FloodData               string `json:"flood_data" validate:"required"`
	ResourceData            string `json:"resource_data" validate:"required"`
}

type VolunteerTask struct {
	Priority       string `json:"priority"` // High | Medium | Low
	Description    string `json:"description"`
	Location       string `json:"location"`
	ResourceNeeded string `json:"resource_needed"`
}

type TaskGenerationResponse struct {
	Status     string          `json:"status"`
	Message    string          `json:"message,omitempty"`
	Tasks      []VolunteerTask `json:"tasks"`
	TotalTasks int             `json:"total_tasks"`
}
