package openai

// Kept deliberately in sync in spirit (not in letter) with the other
// providers: transactional data in, branding and legal boilerplate out.
const extractionPrompt = `Extract the RELEVANT data from this document image and return it as a single well-structured JSON object.

Focus on transactional and customer-specific data: customer names and addresses, invoice/reference/tracking numbers, dates and deadlines, service descriptions, quantities, rates, amounts and totals, and any handwritten notes.

Exclude company branding, company contact details (phone, email, address, website), standard disclaimers, terms and conditions, caution messages, and any boilerplate that would appear on every document of this kind.

Return ONLY valid JSON with descriptive keys and clean string values. No prose, no markdown fences.`
