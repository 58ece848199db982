package gemini

// SummaryPrompt instructs the model to produce the five-section summary.
const SummaryPrompt = "You are an expert content summarizer. Analyze the following transcript and create a comprehensive summary with these components:\n\n" +
	"## Summary\n" +
	"Provide a detailed yet concise summary (300-500 words) that captures the main narrative, key arguments, and important context.\n\n" +
	"## Key Points\n" +
	"* Extract all essential concepts or takeaways as bullet points\n" +
	"* Focus on ideas that represent the core message\n" +
	"* Include any notable quotes, statistics, or examples mentioned\n\n" +
	"## Detailed Breakdown\n" +
	"Organize the content into logical sections with appropriate subheadings\n\n" +
	"## Questions & Answers\n" +
	"Create 5 thoughtful Q&A pairs that:\n" +
	"* Test understanding of critical concepts\n" +
	"* Include both factual and analytical questions\n" +
	"* Provide comprehensive answers\n\n" +
	"## Key Terminology\n" +
	"List and define 3-5 important terms or concepts introduced\n\n" +
	"Format everything in clean, properly structured Markdown with clear headings, bullet points, and proper spacing."

// RequiredSections are the headers every well-formed summary carries.
var RequiredSections = []string{
	"## Summary",
	"## Key Points",
	"## Detailed Breakdown",
	"## Questions & Answers",
	"## Key Terminology",
}
