package extractor

import "cropai/internal/domain"

// BuildExtractionPrompt returns the extraction prompt for one document of
// the given kind, asking for output in the profile's preferred language.
func BuildExtractionPrompt(kind domain.RecordKind, language string) string {
	if language == "" {
		language = "en"
	}

	header := `You are a document data extraction assistant. Analyze the provided image and extract ALL data into the following JSON structure.

IMPORTANT INSTRUCTIONS:
- Extract EVERY line item visible in the document. Do not skip, summarize, or omit any items.
- Normalize all dates to YYYY-MM-DD format. Strip timestamps and other non-date text.
- Item names should be in language "` + language + `" where a translation is unambiguous; otherwise keep the original text.
- Numbers must be plain JSON numbers with no thousands separators or currency symbols.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.

`

	switch kind {
	case domain.RecordKindSale:
		return header + `The JSON object must follow this schema:
{
  "date": "",
  "items": [
    {"name": "", "quantity": 0, "unit": "", "price": 0, "total": 0}
  ],
  "total": 0,
  "currency": "",
  "vendor": ""
}

"name" is the crop or product sold. "price" is the unit price; omit it if the document only shows a line total. If a field is not present in the document, use empty string for text and 0 for numbers.`
	default:
		return header + `The JSON object must follow this schema:
{
  "date": "",
  "items": [
    {"name": "", "quantity": 0, "unit": "", "price": 0, "total": 0}
  ],
  "total": 0
}

"name" is the purchased product or input. "price" is the unit price; omit it if the document only shows a line total. If a field is not present in the document, use empty string for text and 0 for numbers.`
	}
}
