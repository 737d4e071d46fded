package out_test

const catalogJSON = `{
  "term": "2026-2027 Güz",
  "programs": [
    {
      "id": "bp1",
      "name": "Bilgisayar Programcılığı 1",
      "courses": [
        {
          "key": "MAT101",
          "name": "Matematik",
          "sessions": [
            {"day": "Pazartesi", "start": "09:00", "end": "10:30", "room": "A-101", "teacher": "Dr. Ada", "group": 1},
            {"day": "Salı", "start": "13:00", "end": "14:30", "room": "A-102", "teacher": "Dr. Ada", "group": 2}
          ]
        }
      ]
    }
  ]
}`

const catalogYAML = `term: 2026-2027 Güz
programs:
  - id: bp1
    name: Bilgisayar Programcılığı 1
    courses:
      - key: MAT101
        name: Matematik
        sessions:
          - {day: Pazartesi, start: "09:00", end: "10:30", room: A-101, teacher: Dr. Ada, group: 1}
          - {day: Salı, start: "13:00", end: "14:30", room: A-102, teacher: Dr. Ada, group: 2}
`
