package service

import (
	"context"
	"testing"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taskReply = `Here is the plan:
<task_list>
<task>
<priority>High</priority>
<description>Sơ tán người dân khu vực ven sông</description>
<location>Phường Phú Hội</location>
<resources_needed>2 xuồng máy, 10 tình nguyện viên</resources_needed>
</task>
<task>
<priority>Medium</priority>
<description>Phát lương thực tại điểm trú ẩn</description>
<location>Trường THCS Nguyễn Du</location>
</task>
<task>
<priority>High</priority>
<description>Thiếu location nên bị loại</description>
<resources_needed>1 xe tải</resources_needed>
</task>
<task>
<priority>Low</priority>
<description>Kiểm tra hệ thống loa phát thanh</description>
<location>Toàn phường</location>
<resources_needed></resources_needed>
</task>
</task_list>
Done.`

func TestGenerateTasksValidatesBeforeRemoteCall(t *testing.T) {
	mock := &recordingLLM{reply: taskReply}
	svc := NewTaskService(mock, nopLogger{})

	tests := []struct {
		name                 string
		eop, flood, resources string
	}{
		{"missing eop", " ", "flood", "res"},
		{"missing flood data", "eop", "", "res"},
		{"missing resources", "eop", "flood", "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateTasks(context.Background(), tt.eop, tt.flood, tt.resources)
			require.Error(t, err)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Zero(t, mock.generateCalls)
		})
	}
}

func TestGenerateTasksDropsMalformedBlocks(t *testing.T) {
	svc := NewTaskService(&recordingLLM{reply: taskReply}, nopLogger{})

	res, err := svc.GenerateTasks(context.Background(), "kế hoạch", "lũ cấp 2", "nguồn lực")
	require.NoError(t, err)

	assert.Equal(t, dto.StatusSuccess, res.Status)
	require.Len(t, res.Tasks, 3)
	assert.Equal(t, 3, res.TotalTasks)

	first := res.Tasks[0]
	assert.Equal(t, "High", first.Priority)
	assert.Equal(t, "Sơ tán người dân khu vực ven sông", first.Description)
	assert.Equal(t, "Phường Phú Hội", first.Location)
	assert.Equal(t, "2 xuồng máy, 10 tình nguyện viên", first.ResourceNeeded)

	// resources_needed is optional
	assert.Empty(t, res.Tasks[1].ResourceNeeded)
	assert.Empty(t, res.Tasks[2].ResourceNeeded)
}

func TestGenerateTasksNoTaskListInReply(t *testing.T) {
	svc := NewTaskService(&recordingLLM{reply: "Không thể lập danh sách."}, nopLogger{})

	res, err := svc.GenerateTasks(context.Background(), "eop", "flood", "res")
	require.NoError(t, err)

	assert.Equal(t, dto.StatusSuccess, res.Status)
	assert.Empty(t, res.Tasks)
	assert.Zero(t, res.TotalTasks)
}

func TestGenerateTasksRemoteFailureBecomesStatusError(t *testing.T) {
	svc := NewTaskService(&recordingLLM{err: errProviderDown}, nopLogger{})

	res, err := svc.GenerateTasks(context.Background(), "eop", "flood", "res")
	require.NoError(t, err)

	assert.Equal(t, dto.StatusError, res.Status)
	assert.Contains(t, res.Message, "Failed to generate tasks")
	assert.NotNil(t, res.Tasks)
	assert.Empty(t, res.Tasks)
}
