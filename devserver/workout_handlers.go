package devserver

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/workout"
)

func (s *Server) SearchExercisesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := intParam(r, "limit")
		if !ok {
			writeJSON(w, http.StatusBadRequest, api.Failed[struct{}]("limit must be a non-negative integer"))
			return
		}
		q := r.URL.Query()
		respond(w, s.workout.SearchExercises(r.Context(), workout.ExerciseSearchRequest{
			Query:      q.Get("query"),
			Muscle:     q.Get("muscle"),
			Equipment:  q.Get("equipment"),
			Difficulty: workout.Difficulty(q.Get("difficulty")),
			Category:   workout.Category(q.Get("category")),
			Limit:      limit,
		}))
	}
}

func (s *Server) ExerciseDetailsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.workout.ExerciseDetails(r.Context(), mux.Vars(r)[varID]))
	}
}

func (s *Server) GenerateWorkoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req workout.GenerateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, s.workout.GenerateWorkout(r.Context(), req))
	}
}

func (s *Server) ProgramsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.workout.Programs(r.Context()))
	}
}

func (s *Server) LogWorkoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req workout.LogRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, s.workout.LogWorkout(r.Context(), req))
	}
}

func (s *Server) WorkoutHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.workout.WorkoutHistory(r.Context()))
	}
}

func (s *Server) WorkoutDetailsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.workout.WorkoutDetails(r.Context(), mux.Vars(r)[varID]))
	}
}
