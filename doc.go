/*
Package decant solves the classic three water vessels measuring puzzle:
given three vessels of fixed integer capacities, an unlimited tap and a
sink, find a shortest sequence of fill, drain and transfer moves that
leaves exactly the target volume in some vessel, starting from all empty.

The core is a breadth-first exhaustive search over the reachable vessel
configurations, with an append-only history arena for path reconstruction.
Everything around it (CLI, HTTP API, MCP server, caching, metrics) is an
adapter over the same function-call boundary: capacities and a target in,
an ordered state path or "no solution" out.

# Usage

	svc := decant.NewService()

	caps, err := domain.NewCapacities(3, 5, 8)
	if err != nil {
		log.Fatal(err)
	}

	sol, found, err := svc.Solve(context.Background(), caps, 4)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		log.Println("no solution")
		return
	}
	for i, state := range sol.Path {
		log.Printf("step %d: %v", i, state)
	}
*/
package decant
