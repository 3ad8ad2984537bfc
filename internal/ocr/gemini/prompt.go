package gemini

// extractionPrompt steers the model toward transactional, customer-specific
// data and away from branding/legal boilerplate. A deny-list downstream
// catches what the prompt misses.
const extractionPrompt = `Please extract RELEVANT data from this document and return it as a well-structured JSON object.

IMPORTANT GUIDELINES:
1. Focus on TRANSACTIONAL and CUSTOMER-SPECIFIC data that varies between documents
2. EXCLUDE company branding, contact information, and boilerplate text
3. EXCLUDE standard disclaimers, cautions, terms & conditions, and legal text
4. EXCLUDE company addresses, phone numbers, emails, and website URLs
5. Include customer information, service details, amounts, quantities, dates, and reference numbers
6. Include any handwritten content or form field data
7. For tables, extract each meaningful row with appropriate keys

EXTRACT:
- Customer names, addresses, contact details
- Invoice/reference/tracking numbers
- Dates, times, and deadlines
- Service descriptions and specifications
- Quantities, weights, measurements
- Rates, amounts, charges, and totals
- Origin and destination information
- Item descriptions and categories
- Any handwritten notes or special instructions

DO NOT EXTRACT:
- Company name, logo, or branding information
- Company contact details (phone, email, address, website)
- Standard disclaimers, terms, conditions, or legal text
- Caution messages or warning text
- Company registration details or certifications
- Boilerplate text that appears on every document

Return ONLY valid JSON with descriptive keys and clean values. Use format:
{
  "customer_name": "John Doe",
  "reference_number": "INV-2024-001",
  "service_date": "01/15/2024",
  "total_amount": "1,250.00"
}`
