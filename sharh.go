// Package sharh reconstructs commentary text for numbered sections (sermons,
// letters) from paginated markup sources. It fetches book pages, parses them
// into typed blocks, walks the concatenated block stream to rebuild each
// section's explanation, and persists the resulting label→text mapping.
//
// This package contains domain types, interfaces and the pure extraction core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package sharh
