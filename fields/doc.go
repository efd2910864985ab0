// Package fields turns named résumé sections into typed values: contact
// details from the profile section, dated entries from the work and
// education sections, and a normalized skill list.
//
// # Extraction style
//
// Nothing in a résumé is guaranteed, so every field is produced by an
// ordered fallback chain: candidate strategies run in sequence and the
// first non-empty result wins. A field no strategy can fill stays an
// empty string. Extractors never return errors for missing content.
//
// # Extractors
//
// [ProfileExtractor] pulls name, email, phone, location, and profile
// URLs from the text above the first section heading. [WorkExtractor]
// and [EducationExtractor] split their sections into entries anchored on
// date-bearing lines and fill each entry's fields through per-field
// chains. [SkillsExtractor] tokenizes the skills section, canonicalizes
// known spellings, and groups recognized skills under a fixed taxonomy.
//
// Phone formatting goes through a [PhoneFormatter]; the default is
// backed by libphonenumber and renders national conventions per region.
package fields
