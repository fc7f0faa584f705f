package identify

// IdentificationPrompt instructs the model to answer in the line format
// Parse understands. The format is requested, not enforced; Parse tolerates
// drift from it.
const IdentificationPrompt = `Analyze the provided plant image and give the following information:
1. Common Name: Provide the most widely recognized common name for this plant.
2. Hindi Name: If there's a commonly used Hindi name, provide it. If not, state that there isn't a widely accepted Hindi name.
3. Seasonal Care Tips: Provide 2-3 specific care tips for each season (Spring, Summer, Monsoon, Winter).
   If a tip doesn't apply to a particular season, provide a general care tip instead.

Format your response like this:
Common Name: [Plant's common name]
Hindi Name: [Hindi name or statement about lack of common Hindi name]

Spring Care:
• [Tip 1]
• [Tip 2]
• [Tip 3]

Summer Care:
• [Tip 1]
• [Tip 2]
• [Tip 3]

Monsoon Care:
• [Tip 1]
• [Tip 2]
• [Tip 3]

Winter Care:
• [Tip 1]
• [Tip 2]
• [Tip 3]`
