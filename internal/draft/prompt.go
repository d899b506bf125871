package draft

import (
	"fmt"
	"strings"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/request"
)

const proposalPromptTemplate = `You are %s, a professional and empathetic Career Coach with the following headline: "%s".
Your experience is: %s
Your available services are:
%s

A potential client, '%s', has reached out for help.
Their professional headline is: "%s".
They are interested in the service: "%s".
Here are the details of their request: "%s".

Based on all of this information, write a personalized, confident, and encouraging proposal to '%s'.

Follow this structure:
1. **Greeting:** Start with a warm, personalized greeting (e.g., "Hi %s,").
2. **Acknowledge and Validate:** Acknowledge their request and show you understand their situation based on their project details and headline. Connect their need to your expertise.
3. **Propose a Solution:** Briefly explain HOW you will help them using the specific service they requested ('%s'). Mention the tangible outcomes they can expect.
4. **Establish Credibility:** Subtly weave in your experience (e.g., "Having helped over 1,500 professionals...").
5. **Call to Action:** End with a clear next step. Suggest a brief, complimentary call to discuss their goals in more detail.

IMPORTANT: The entire proposal must be concise and professional. Keep the total length under %d characters.`

const refinePromptTemplate = `Please review the following client proposal. Enhance it by making it more persuasive, confident, and concise.
Ensure it clearly communicates the value proposition and ends with a strong call to action.
IMPORTANT: The final enhanced proposal must not exceed %d characters.

Original Proposal:
---
%s
---`

// proposalPrompt builds the generation prompt for a request, embedding the
// author profile, service catalog, and the request fields verbatim.
func proposalPrompt(cfg *config.Config, r *request.Request) string {
	return fmt.Sprintf(proposalPromptTemplate,
		cfg.Author.Name,
		cfg.Author.Headline,
		cfg.Author.Experience,
		formatServices(cfg.Services),
		r.ClientName,
		r.ClientHeadline,
		r.ServiceNeeded,
		r.ProjectDetails,
		r.ClientName,
		r.ClientName,
		r.ServiceNeeded,
		cfg.ProposalMaxChars,
	)
}

// refinePrompt builds the enhancement prompt around an existing draft.
func refinePrompt(cfg *config.Config, text string) string {
	return fmt.Sprintf(refinePromptTemplate, cfg.ProposalMaxChars, text)
}

func formatServices(services []config.ServiceOffering) string {
	var b strings.Builder
	for _, s := range services {
		fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
