package escape

// PartnerQuotes are shown when a partner catches the player.
var PartnerQuotes = []string{
	"Hey! Do you have a minute to discuss the Q4 strategy?",
	"Wait! I need to run something by you before you go.",
	"Perfect timing! Let's sync on the client deliverables.",
	"Hold on! The steering committee needs your input.",
	"Quick question about the financial model before you leave.",
	"Can we discuss the implementation roadmap? It's urgent.",
	"I need your perspective on the market analysis.",
	"Wait! The board presentation needs your review.",
	"Do you have time for a quick alignment session?",
	"Perfect! Let's discuss the resource allocation.",
	"I need your expertise on the competitive landscape.",
	"Can we quickly review the risk assessment?",
	"Hold on! The client is asking about the timeline.",
	"Quick sync on the stakeholder management plan?",
	"I need your input on the change management strategy.",
	"Wait! The due diligence needs your sign-off.",
	"Can we discuss the operational efficiency metrics?",
	"Perfect timing! Let's review the cost optimization.",
	"I need your perspective on the digital transformation.",
	"Quick question about the sustainability framework.",
}
