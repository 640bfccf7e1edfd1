// Package services holds the business logic between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
//   - AuthService: registration, credential verification, token issuance
//   - ResultService: grade entries (role-scoped mutation)
//   - FutureTestService: upcoming tests (ownership-scoped mutation)
//   - EvaluationService: instructor evaluations (upsert semantics)
//   - ChatService: peer-to-peer messages
//   - DirectoryService: account lookups and listings
//   - ResourceService: disk-cached third-party resource downloads
package services
