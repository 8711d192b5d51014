package synth

const (
	modelName = "Gemma 3 27B IT"

	needInputMessage = "请输入文本提示。"

	textOnlyTemplate = "[演示] 基于文本输入，模型已生成以下响应：\n\n" +
		"Gemma 3 27B IT 是一个多模态大语言模型，能够处理图像和文本输入，" +
		"并生成相应的文本输出。该模型在图像理解、视觉问答、图像描述生成等任务中表现优异。"

	imageTextTemplate = "[演示] 基于图像和文本输入，模型已生成以下响应：\n\n" +
		"模型已成功分析输入图像，并结合文本提示生成了相应的描述。" +
		"Gemma 3 27B IT 能够理解图像中的视觉内容，并基于用户的问题或指令生成准确的文本回复。" +
		"该模型支持多种视觉理解任务，包括图像问答、图像描述、视觉推理等。"

	imageAckFormat = "已接收图像输入，文本提示：%s%s\n\n"

	textGenerationFormat = "[演示] 基于输入文本，模型已生成以下内容（最大长度：%d tokens）：\n\n" +
		"Gemma 3 27B IT 是一个强大的指令调优模型，能够根据用户的输入生成连贯、" +
		"相关且有用的文本响应。该模型在对话、问答、摘要、推理等多种文本生成任务中表现优异。" +
		"模型支持多轮对话，能够理解上下文并生成符合语境的回复。"

	Ellipsis = "..."

	InitialModelStatus = "尚未加载"
	readyModelStatus   = "模型状态：Gemma 3 27B IT 已就绪（演示模式，未加载真实权重）"
)

type Template string

const (
	TemplateNeedInput      Template = "need_input"
	TemplateTextOnly       Template = "text_only"
	TemplateImageText      Template = "image_text"
	TemplateTextGeneration Template = "text_generation"
)

func ModelName() string {
	return modelName
}
