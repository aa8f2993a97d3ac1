package fakeportal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path every endpoint lives under, as on the real portal.
const APIPrefix = "/StudentPortalAPI"

// Init builds the router.
func (p *Portal) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(p.withTraceID)
	router.Use(p.withLogging)

	router.Route(APIPrefix, func(r chi.Router) {
		r.Use(p.withLocalName)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/token/getcaptcha", p.getCaptcha)
			r.Post("/token/pretoken-check", p.pretokenCheck)
			r.Post("/token/generate-token1", p.generateToken)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(p.auth)

			r.Post("/studentbankdetails/getstudentbankinfo", p.bankInfo)
			r.Post("/StudentClassAttendance/getstudentInforegistrationforattendence", p.attendanceMeta)
			r.Post("/StudentClassAttendance/getstudentattendancedetail", p.attendanceDetail)
			r.Post("/clxuser/changepassword", p.changePassword)
			r.Post("/reqsubfaculty/getregistrationList", p.registrationList)
			r.Post("/reqsubfaculty/getfaculties", p.faculties)
			r.Post("/studentcommonsontroller/getsemestercode-withstudentexamevents", p.examSemesters)
			r.Post("/studentcommonsontroller/getstudentexamevents", p.examEvents)
			r.Post("/studentsttattview/getstudent-examschedule", p.examSchedule)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return router
}
