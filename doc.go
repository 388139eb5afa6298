// Command and library net-flow-opt schedules preventive maintenance over a
// flow-network system using a multi-objective NSGA-II optimizer.
//
// A System models a production network as a directed, capacitated graph
// whose interior vertices are maintainable Components; taking a component
// offline for maintenance removes its capacity from the network. The
// optimizer searches over GroupingStructures — which Activities execute
// together, on which repair crew — minimizing two competing objectives:
//
//	LF  lost flow, the throughput the system forfeits while components
//	    it groups together are offline, integrated over time
//	IC  indirect cost, the total penalty of shifting each component's
//	    maintenance date away from its individually optimal age
//
// The package layout mirrors the pipeline from raw topology to evaluated
// schedule:
//
//	system/       — the flow-network graph and vertex-capacity folding
//	maxflow/      — Dinic and Edmonds-Karp max-flow over a plain edge graph
//	activity/     — per-component maintenance cost model h(Δt)
//	group/        — joint feasibility and Newton-iteration date minimization
//	evaluator/    — lost-flow integration over a maintenance timeline
//	plan/         — binds a GroupingStructure to Activities and evaluates it
//	individual/   — NSGA-II bookkeeping: dominance, rank, crowding distance
//	popinit/      — initial population construction
//	mutator/      — the sole variation operator (no crossover)
//	nsga2/        — the generational selection loop
//	systembuilder/ — example topology construction for tests and the CLI
//	config/       — run configuration loading (defaults, YAML, environment)
//	cmd/pmopt/    — a CLI demo wiring the above into one optimizer run
package netflowopt
