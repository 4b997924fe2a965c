/*
Package domain contains the typed model of a developer portfolio.

Document is the root value; every collection on it is optional. Record types
(Work, Project, Education, MOOC, Certification, Award, Achievement, Skill,
Language, Interest, Volunteer, Publication, Speaking, Media, Patent,
Reference) mirror the field catalog in package catalog, and the closed
vocabularies used by enum fields are declared here once and shared by both.

The package is pure: no I/O, no validation logic. Values are produced by
decoding a validated, normalized map (see the root devfolio package).
*/
package domain
