package sqlinline

const QInsertUser = `--sql 3f2b6d1c-8a4e-4f0b-9c6d-5e1a7b3c9d2f
insert into users (id, name, email, password_hash, phone, role, created_at)
values (gen_random_uuid(), $1::text, lower($2::text), $3::text, $4::text, 'user', now())
on conflict (email) do nothing
returning id;
`

const QSelectUserByEmail = `--sql a1c9e7d3-2b58-4c16-8f4a-0d6b9e2f5a71
select id, name, email, password_hash, role
from users
where email = lower($1::text)
limit 1;
`

const QSelectUserContact = `--sql 6d8f2a4b-1e7c-4d39-b5a0-8c3e6f1d9b24
select name, email
from users
where id = $1::uuid
limit 1;
`
