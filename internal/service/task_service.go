package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"disaster-chatbot-be/internal/constant"
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/apperrors"
	"disaster-chatbot-be/internal/pkg/logger"
	"disaster-chatbot-be/pkg/llm"
)

// ITaskService generates prioritized volunteer task lists from an EOP and
// situational data.
type ITaskService interface {
	// GenerateTasks returns an error only for invalid input; remote and
	// parse failures degrade into a status-tagged response.
	GenerateTasks(ctx context.Context, eop, floodData, resourceData string) (*dto.TaskGenerationResponse, error)
}

type taskService struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewTaskService(llmProvider llm.LLMProvider, sysLogger logger.ILogger) ITaskService {
	return &taskService{
		llmProvider: llmProvider,
		logger:      sysLogger,
	}
}

func (s *taskService) GenerateTasks(ctx context.Context, eop, floodData, resourceData string) (*dto.TaskGenerationResponse, error) {
	if strings.TrimSpace(eop) == "" {
		return nil, apperrors.NewValidation("emergency operations plan is required")
	}
	if strings.TrimSpace(floodData) == "" {
		return nil, apperrors.NewValidation("flood data is required")
	}
	if strings.TrimSpace(resourceData) == "" {
		return nil, apperrors.NewValidation("resource data is required")
	}

	prompt := fmt.Sprintf(constant.TaskPromptTemplateV1, eop, floodData, resourceData)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Error("task", "generation call failed", map[string]interface{}{"error": err.Error()})
		return &dto.TaskGenerationResponse{
			Status:  dto.StatusError,
			Message: fmt.Sprintf("Failed to generate tasks: %v", err),
			Tasks:   []dto.VolunteerTask{},
		}, nil
	}

	tasks := parseTaskList(raw)

	return &dto.TaskGenerationResponse{
		Status:     dto.StatusSuccess,
		Tasks:      tasks,
		TotalTasks: len(tasks),
	}, nil
}

var (
	taskListRe    = regexp.MustCompile(`(?s)<task_list>(.*?)</task_list>`)
	taskRe        = regexp.MustCompile(`(?s)<task>(.*?)</task>`)
	priorityRe    = regexp.MustCompile(`(?s)<priority>(.*?)</priority>`)
	descriptionRe = regexp.MustCompile(`(?s)<description>(.*?)</description>`)
	locationRe    = regexp.MustCompile(`(?s)<location>(.*?)</location>`)
	resourcesRe   = regexp.MustCompile(`(?s)<resources_needed>(.*?)</resources_needed>`)
)

// parseTaskList extracts well-formed task blocks from the tag-delimited
// model reply. A block missing priority, description or location is
// silently dropped; resources_needed is optional.
func parseTaskList(responseText string) []dto.VolunteerTask {
	tasks := []dto.VolunteerTask{}

	listMatch := taskListRe.FindStringSubmatch(responseText)
	if listMatch == nil {
		return tasks
	}

	for _, taskMatch := range taskRe.FindAllStringSubmatch(listMatch[1], -1) {
		block := taskMatch[1]

		priority := priorityRe.FindStringSubmatch(block)
		description := descriptionRe.FindStringSubmatch(block)
		location := locationRe.FindStringSubmatch(block)
		if priority == nil || description == nil || location == nil {
			continue
		}

		task := dto.VolunteerTask{
			Priority:    strings.TrimSpace(priority[1]),
			Description: strings.TrimSpace(description[1]),
			Location:    strings.TrimSpace(location[1]),
		}
		if resources := resourcesRe.FindStringSubmatch(block); resources != nil {
			task.ResourceNeeded = strings.TrimSpace(resources[1])
		}
		tasks = append(tasks, task)
	}

	return tasks
}
