package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

const (
	// AnswerRefusal is the single canonical refusal string. Replies the
	// model paraphrases are normalized back onto it so downstream
	// consumers can pattern-match.
	AnswerRefusal = "Xin lỗi, tôi không có đủ dữ liệu để trả lời câu hỏi này."

	// AnswerNotTrained is returned when a tenant has no built index yet.
	AnswerNotTrained = "Xin lỗi, trợ lý này chưa được huấn luyện với dữ liệu nào. Vui lòng quay lại sau khi dữ liệu được cập nhật."

	// AnswerUnavailable covers remote provider failures in the Q&A path;
	// they are swallowed here to keep the conversation flowing.
	AnswerUnavailable = "Xin lỗi, hệ thống đang gặp sự cố. Vui lòng thử lại sau ít phút."

	// ShelterRedirect is mandated verbatim for shelter-location requests.
	ShelterRedirect = "Vì lý do an toàn, vui lòng liên hệ chính quyền địa phương hoặc lực lượng cứu hộ để được hướng dẫn đến nơi trú ẩn gần nhất."
)

// InsufficientDataPhrases flags a refusal the model phrased its own way;
// any match normalizes the whole answer to AnswerRefusal.
var InsufficientDataPhrases = []string{
	"không có đủ dữ liệu",
	"không đủ dữ liệu",
	"không có đủ thông tin",
	"không đủ thông tin",
	"not enough information",
	"insufficient data",
	"no relevant information",
}

// AnswerContextPromptV1 restricts the assistant to the disaster domain and
// to the retrieved context block (injected via %s).
const AnswerContextPromptV1 = `You are a disaster and emergency response assistant. Follow these rules strictly:

1. Only answer questions about floods, storms, natural disasters and emergency response.
2. Answer EXCLUSIVELY from the context below. Do not use outside knowledge.
3. If the context does not contain the answer, reply with exactly this sentence and nothing else: "` + AnswerRefusal + `"
4. If the user asks where to shelter or evacuate to, reply with exactly this sentence and nothing else: "` + ShelterRedirect + `"
5. Respond in Vietnamese.

Context:
%s`

// AnswerFallbackPromptV1 keeps the same persona and refusal rules when no
// chunks were retrieved.
const AnswerFallbackPromptV1 = `You are a disaster and emergency response assistant. Follow these rules strictly:

1. Only answer questions about floods, storms, natural disasters and emergency response.
2. You have no reference data for this question. If you cannot answer reliably, reply with exactly this sentence and nothing else: "` + AnswerRefusal + `"
3. If the user asks where to shelter or evacuate to, reply with exactly this sentence and nothing else: "` + ShelterRedirect + `"
4. Respond in Vietnamese.`
